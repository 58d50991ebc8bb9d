package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
	Email    EmailConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	// Store selects the backing store: "redis" or "memory".
	Store      string
	CookieName string
	TTL        time.Duration
}

type AuthConfig struct {
	// ResetTokenSecret signs password-reset tokens.
	ResetTokenSecret string
	ResetTokenTTL    time.Duration
	// LoginRatePerMin and LoginBurst bound login attempts per client IP.
	LoginRatePerMin int
	LoginBurst      int
}

type EmailConfig struct {
	Enabled       bool
	ResendAPIKey  string
	FromAddress   string
	AdminAddress  string
	PublicBaseURL string
}

type CORSConfig struct {
	AllowedOrigins string
}

func Load() (*Config, error) {
	// .env is optional outside development.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "nursery"),
			Password: getEnv("DB_PASSWORD", "nursery"),
			DBName:   getEnv("DB_NAME", "nurserydb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", "redis"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "nursery_session"),
			TTL:        getDurationEnv("SESSION_TTL", 12*time.Hour),
		},
		Auth: AuthConfig{
			ResetTokenSecret: getEnv("AUTH_RESET_TOKEN_SECRET", ""),
			ResetTokenTTL:    getDurationEnv("AUTH_RESET_TOKEN_TTL", 30*time.Minute),
			LoginRatePerMin:  getIntEnv("AUTH_LOGIN_RATE_PER_MIN", 10),
			LoginBurst:       getIntEnv("AUTH_LOGIN_BURST", 5),
		},
		Email: EmailConfig{
			Enabled:       getBoolEnv("EMAIL_ENABLED", false),
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromAddress:   getEnv("EMAIL_FROM", "noreply@example.com"),
			AdminAddress:  getEnv("EMAIL_ADMIN", ""),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
	}

	if cfg.Session.Store != "redis" && cfg.Session.Store != "memory" {
		return nil, fmt.Errorf("invalid SESSION_STORE %q: must be redis or memory", cfg.Session.Store)
	}

	if cfg.Server.Environment != "development" && cfg.Auth.ResetTokenSecret == "" {
		return nil, fmt.Errorf("AUTH_RESET_TOKEN_SECRET is required outside development")
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
