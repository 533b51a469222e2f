package main

import (
	"context"
	"fmt"
	"log"
	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/console"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/drivers/database"
	"medicare-frontend/internal/app/drivers/logger"
	hospitalapi "medicare-frontend/internal/app/services/hospital_api"
	"medicare-frontend/internal/app/services/session"
	"medicare-frontend/internal/app/services/shared/redis"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code once every deferred release has run.
func run() int {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig, logger.SinkFile)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Printf("Error loading location: %v", err)
		return 1
	}
	time.Local = location

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap := config.Bootstrap{
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	defer bootstrap.Shutdown(context.Background())

	if driverConfig.Session.Driver == config.SessionDriverRedis {
		bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig, zapLogger)
		if err != nil {
			log.Printf("Error connecting to redis: %v", err)
			return 1
		}
	}

	app, err := bootstrapingTheConsole(bootstrap, location)
	if err != nil {
		log.Printf("Error starting console: %v", err)
		return 1
	}

	if err := app.Run(ctx); err != nil {
		zapLogger.Error("Console exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// bootstrapingTheConsole wires one shell for the single user at this
// terminal. The API session cookie lives in the jar for the process lifetime.
func bootstrapingTheConsole(bootstrap config.Bootstrap, location *time.Location) (*console.Console, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	api := hospitalapi.NewAPIClient(bootstrap.InternalConfig.API.BaseUrl, bootstrap.Logger, jar)

	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}
	sessions, err := session.NewProvider(bootstrap.DriverConfig.Session, redisRepository, bootstrap.Logger)
	if err != nil {
		return nil, err
	}

	sh := shell.New(shell.NewClients(api), sessions.ForSession(""), location, bootstrap.Logger)
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	return console.New(sh, console.NewPrompter(os.Stdin, os.Stdout), os.Stdout, colorize, bootstrap.Logger), nil
}
