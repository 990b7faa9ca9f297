package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local development) and
// the process environment.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "inventory-backend")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "inventory")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "inventory-backend")

	// Auth policy config
	configs.Auth.TempSessionTTLMinutes = GetEnvAsInt("AUTH_TEMP_SESSION_TTL_MIN", 5)
	configs.Auth.OTPTTLMinutes = GetEnvAsInt("AUTH_OTP_TTL_MIN", 5)
	configs.Auth.OTPResendCap = GetEnvAsInt("AUTH_OTP_RESEND_CAP", 3)
	configs.Auth.OTPResendWindowMin = GetEnvAsInt("AUTH_OTP_RESEND_WINDOW_MIN", 10)
	configs.Auth.LinkCodeTTLMinutes = GetEnvAsInt("AUTH_LINK_CODE_TTL_MIN", 5)
	configs.Auth.LinkResultTTLMinutes = GetEnvAsInt("AUTH_LINK_RESULT_TTL_MIN", 5)

	// Telegram config
	configs.Telegram.BotToken = GetEnv("TELEGRAM_BOT_TOKEN", "")
	configs.Telegram.BotUsername = GetEnv("TELEGRAM_BOT_USERNAME", "")
	configs.Telegram.PollTimeout = GetEnvAsInt("TELEGRAM_POLL_TIMEOUT", 10)

	// Email config
	configs.Email.APIURL = GetEnv("EMAIL_API_URL", "")
	configs.Email.APIKey = GetEnv("EMAIL_API_KEY", "")
	configs.Email.FromAddress = GetEnv("EMAIL_FROM_ADDRESS", "")
	configs.Email.Timeout = GetEnvAsInt("EMAIL_TIMEOUT", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.AuditTopic = GetEnv("NSQ_AUDIT_TOPIC", "auth.events")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// GetEnv retrieves an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
