package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"equiprent/internal/pricing"
)

const (
	defaultPort   = "8080"
	defaultJWTTTL = 24 * time.Hour
)

// Config is the full runtime configuration, assembled from environment
// variables (a local .env file is honored when present).
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret string
	JWTTTL    time.Duration

	// Storefront pricing parameters. Currency-unit-agnostic; see
	// pricing.Calculator.
	DeliveryFee float64
	TaxRate     float64
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET are mandatory; everything else has defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      defaultJWTTTL,
		DeliveryFee: pricing.DefaultDeliveryFee,
		TaxRate:     pricing.DefaultTaxRate,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		cfg.JWTTTL = ttl
	}

	var err error
	if cfg.DeliveryFee, err = getEnvFloat("DELIVERY_FEE", cfg.DeliveryFee); err != nil {
		return nil, err
	}
	if cfg.TaxRate, err = getEnvFloat("TAX_RATE", cfg.TaxRate); err != nil {
		return nil, err
	}
	if cfg.DeliveryFee < 0 || cfg.TaxRate < 0 {
		return nil, fmt.Errorf("pricing parameters must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
