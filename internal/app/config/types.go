package config

const (
	SessionDriverFile  = "file"
	SessionDriverRedis = "redis"
)

type (
	DriverConfig struct {
		Redis   Redis
		Logger  Logger
		Session Session
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level          string
		OutputFileName string
	}
	Session struct {
		Driver  string
		FileDir string
		Key     string
	}
)

type (
	InternalConfig struct {
		App App
		API API
	}
	App struct {
		Env                 string
		Port                string
		Timezone            string
		MaxRequests         int
		LoginMaxAttempts    int
		LoginBlockInMinutes int
		ShutdownTimeout     int
		SessionCookieName   string
	}
	API struct {
		BaseUrl string
	}
)
