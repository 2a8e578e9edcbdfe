package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xo/dburl"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsPath      string
	AutoMigrate         bool

	// Auth provider configuration
	JWTSecret string
	JWTIssuer string

	// CORS configuration
	CORSAllowedOrigins []string

	// Payment gateway configuration
	PaymentBaseURL    string
	PaymentAPIKey     string
	PaymentTimeout    time.Duration
	PaymentReturnURL  string
	PaymentSuccessURL string

	// Feed configuration
	FeedTitle       string
	FeedLink        string
	FeedDescription string
	FeedAuthor      string
	FeedSize        int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in the working
// directory is read first if present; real environment variables take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:     getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "pusaka_newsletter"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "./migrations"),
		AutoMigrate:         getEnvBool("AUTO_MIGRATE", false),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTIssuer:           getEnv("JWT_ISSUER", ""),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		PaymentBaseURL:      getEnv("PAYMENT_BASE_URL", "http://localhost:9000"),
		PaymentAPIKey:       getEnv("PAYMENT_API_KEY", ""),
		PaymentTimeout:      getEnvDuration("PAYMENT_TIMEOUT", 10*time.Second),
		PaymentReturnURL:    getEnv("PAYMENT_RETURN_URL", "http://localhost:3000/subscription/verify"),
		PaymentSuccessURL:   getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/subscription/success"),
		FeedTitle:           getEnv("FEED_TITLE", "Pusaka Newsletter"),
		FeedLink:            getEnv("FEED_LINK", "http://localhost:3000"),
		FeedDescription:     getEnv("FEED_DESCRIPTION", "Latest published articles"),
		FeedAuthor:          getEnv("FEED_AUTHOR", "Pusaka Editorial"),
		FeedSize:            getEnvInt("FEED_SIZE", 20),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		if err := cfg.applyDatabaseURL(raw); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDatabaseURL overrides the discrete DB_* settings with the parts of a database URL.
func (c *Config) applyDatabaseURL(raw string) error {
	u, err := dburl.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Driver != "postgres" {
		return fmt.Errorf("DATABASE_URL must point to postgres, got %s", u.Driver)
	}

	if host := u.Hostname(); host != "" {
		c.DBHost = host
	}
	if port := u.Port(); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("DATABASE_URL port: %w", err)
		}
		c.DBPort = p
	}
	if u.User != nil {
		c.DBUser = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			c.DBPassword = pw
		}
	}
	if name := strings.TrimPrefix(u.Path, "/"); name != "" {
		c.DBName = name
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		c.DBSSLMode = mode
	}
	return nil
}

// DatabaseURL returns the connection URL used by migrations.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.PaymentBaseURL == "" {
		return fmt.Errorf("PAYMENT_BASE_URL is required")
	}
	if c.FeedSize < 1 {
		return fmt.Errorf("FEED_SIZE must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
