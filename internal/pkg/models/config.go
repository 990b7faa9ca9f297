package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Email    EmailConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// AuthConfig contains the MFA policy knobs: every ephemeral key TTL and the
// OTP resend throttle live here, not in code.
type AuthConfig struct {
	TempSessionTTLMinutes int
	OTPTTLMinutes         int
	OTPResendCap          int
	OTPResendWindowMin    int
	LinkCodeTTLMinutes    int
	LinkResultTTLMinutes  int
}

// TelegramConfig contains bot transport configuration
type TelegramConfig struct {
	BotToken    string
	BotUsername string
	PollTimeout int // seconds
}

// EmailConfig contains the OTP mail delivery endpoint configuration
type EmailConfig struct {
	APIURL      string
	APIKey      string
	FromAddress string
	Timeout     int // seconds
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address    string
	AuditTopic string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
