package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string
	JWTSecret    string
	LogLevel     string

	// Scheduling defaults. Lead time is the minimum delay between "now"
	// and the earliest bookable slot start.
	BookingLeadTime time.Duration

	// Public endpoint rate limiting.
	RedisAddr       string
	RateLimitPerMin int

	// Booking event publishing (outbox drain).
	KafkaBrokers    string
	KafkaTopic      string
	OutboxPollEvery time.Duration
	OutboxBatchSize int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required to verify host tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Minimum lead time before the earliest bookable slot (default: 30m)
	cfg.BookingLeadTime, err = getEnvAsDuration("BOOKING_LEAD_TIME", 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_LEAD_TIME: %w", err)
	}

	// Redis is optional; when unset the rate limiter falls back to an
	// in-process fixed window.
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RateLimitPerMin, err = getEnvAsInt("RATE_LIMIT_PER_MIN", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MIN: %w", err)
	}

	// Kafka is optional; when unset the outbox publisher is disabled and
	// booking events stay queued in the outbox table.
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "booking-events")
	cfg.OutboxPollEvery, err = getEnvAsDuration("OUTBOX_POLL_EVERY", 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_EVERY: %w", err)
	}
	cfg.OutboxBatchSize, err = getEnvAsInt("OUTBOX_BATCH_SIZE", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_BATCH_SIZE: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsDuration retrieves an environment variable as a time.Duration
// (e.g. "15m", "1h"). It returns the default value if the variable is not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
