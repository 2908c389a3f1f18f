package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	APIPort  int
	LogLevel string
	LogFile  LogFileConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Identity IdentityConfig
	Assets   AssetsConfig
}

// LogFileConfig controls file logging and rotation.
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // MB per file
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

// EmailConfig holds the SMTP settings for outbound mail.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// IdentityConfig holds the credentials for the external identity platform
// used to verify third-party ID tokens.
type IdentityConfig struct {
	APIKey    string
	APISecret string
	APIServer string
}

// AssetsConfig holds the CDN settings for game asset images.
type AssetsConfig struct {
	BaseURL   string
	ProbeHost string
	ProbePort int
}

// Load reads configuration from the environment. A .env file is loaded first
// when present; a missing file falls back to the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		APIPort:  envInt("API_PORT", 8080),
		LogLevel: os.Getenv("LOG_LEVEL"),
		LogFile: LogFileConfig{
			Enabled:    envBool("LOG_FILE_ENABLED", false),
			Path:       os.Getenv("LOG_FILE_PATH"),
			MaxSize:    envInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: envInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     envInt("LOG_FILE_MAX_AGE", 30),
			Compress:   envBool("LOG_FILE_COMPRESS", true),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     envInt("DB_PORT", 3306),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     envInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     envInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USERNAME"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			FromName: os.Getenv("EMAIL_FROM_NAME"),
		},
		Identity: IdentityConfig{
			APIKey:    os.Getenv("IDENTITY_API_KEY"),
			APISecret: os.Getenv("IDENTITY_API_SECRET"),
			APIServer: os.Getenv("IDENTITY_API_SERVER"),
		},
		Assets: AssetsConfig{
			BaseURL:   envString("ASSETS_BASE_URL", "https://assets.makotools.example"),
			ProbeHost: os.Getenv("ASSETS_PROBE_HOST"),
			ProbePort: envInt("ASSETS_PROBE_PORT", 443),
		},
	}, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
