package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service configuration, loaded from environment variables.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	BookingAPIBaseURL string
	BookingAPITimeout time.Duration

	JWTSecret string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	PaymentSuccessRate     float64
	PaymentProcessingDelay time.Duration
	PaymentSuccessDelay    time.Duration

	KnownGuestCacheTTL   time.Duration
	ReceiptRetentionDays int
	SubmitRateLimit      int
	SubmitRateWindow     time.Duration
}

// LoadConfig reads the configuration from the environment, applying defaults
// where a variable is unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "hotel_frontend"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		BookingAPIBaseURL: getEnv("BOOKING_API_BASE_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Hotel Bookings"),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
	}

	if cfg.BookingAPIBaseURL == "" {
		return nil, fmt.Errorf("BOOKING_API_BASE_URL is required")
	}

	var err error
	if cfg.BookingAPITimeout, err = getDuration("BOOKING_API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PaymentSuccessRate, err = getFloat("PAYMENT_SUCCESS_RATE", 0.9); err != nil {
		return nil, err
	}
	if cfg.PaymentProcessingDelay, err = getDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.PaymentSuccessDelay, err = getDuration("PAYMENT_SUCCESS_DELAY", 700*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.KnownGuestCacheTTL, err = getDuration("KNOWN_GUEST_CACHE_TTL", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ReceiptRetentionDays, err = getInt("RECEIPT_RETENTION_DAYS", 90); err != nil {
		return nil, err
	}
	if cfg.SubmitRateLimit, err = getInt("SUBMIT_RATE_LIMIT", 5); err != nil {
		return nil, err
	}
	if cfg.SubmitRateWindow, err = getDuration("SUBMIT_RATE_WINDOW", 1*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString builds the Postgres connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 5s or 2m: %w", key, err)
	}
	return value, nil
}
