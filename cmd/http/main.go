package main

import (
	"context"
	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/http/controllers"
	"medicare-frontend/internal/app/delivery/http/middlewares"
	"medicare-frontend/internal/app/delivery/http/routers"
	"medicare-frontend/internal/app/delivery/http/views"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/drivers/database"
	"medicare-frontend/internal/app/drivers/logger"
	hospitalapi "medicare-frontend/internal/app/services/hospital_api"
	"medicare-frontend/internal/app/services/session"
	"medicare-frontend/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig, logger.SinkStd)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if driverConfig.Session.Driver == config.SessionDriverRedis {
		bootstrap.Redis, err = database.NewRedisClient(context.Background(), driverConfig, zapLogger)
		if err != nil {
			log.Fatalf("Error connecting to redis: %v", err)
		}
	}

	if err := bootstrapingTheApp(bootstrap, location); err != nil {
		log.Fatalf("Error wiring the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("Serving the MediCare front-end on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

// bootstrapingTheApp wires the browser front-end. Shells are built per
// request over the browser's session slot; the API client carries no cookie
// jar so no API session leaks between browsers.
func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) error {
	// Session storage
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}
	sessions, err := session.NewProvider(bootstrap.DriverConfig.Session, redisRepository, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Hospital API
	api := hospitalapi.NewAPIClient(bootstrap.InternalConfig.API.BaseUrl, bootstrap.Logger, nil)
	clients := shell.NewClients(api)
	newShell := func(store contracts.SessionStore) *shell.Shell {
		return shell.New(clients, store, location, bootstrap.Logger)
	}

	// Pages
	renderer, err := views.NewRenderer(bootstrap.Logger)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, sessions, newShell, renderer)
	viewController := controllers.NewViewController(bootstrap.Logger, sessions, newShell, renderer)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.Logger, middlewares, authController, viewController)
	return nil
}
