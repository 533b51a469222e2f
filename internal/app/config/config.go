package config

import (
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:          utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName: utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "medicare.log"),
		},
		Session: Session{
			Driver:  utils.GetEnvString("SESSION_DRIVER", SessionDriverFile),
			FileDir: utils.GetEnvPath("SESSION_FILE_DIR", "$HOME/.medicare"),
			Key:     utils.GetEnvString("SESSION_KEY", constvars.DefaultSessionKey),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Local"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 20),
			LoginMaxAttempts:    utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginBlockInMinutes: utils.GetEnvInt("APP_LOGIN_BLOCK_MINUTES", 5),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionCookieName:   utils.GetEnvString("APP_SESSION_COOKIE_NAME", "medicare_session"),
		},
		API: API{
			BaseUrl: utils.GetEnvString("API_BASE_URL", "http://localhost:5000/api"),
		},
	}
}
