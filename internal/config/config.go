// Package config loads service configuration from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Env is the application environment: development or production.
	Env string

	// Port is the HTTP listen port.
	Port string

	// LogLevel: debug, info, warn, error.
	LogLevel string

	// StorageDriver selects the persistence backend: memory or postgres.
	StorageDriver string

	// DatabaseURL is the PostgreSQL DSN (postgres driver only).
	DatabaseURL string

	// JWTSecret signs access tokens.
	JWTSecret string

	// LowStockThreshold is the inclusive stock level at which a product
	// counts as low stock.
	LowStockThreshold int
}

// Load reads configuration with precedence: env var > .env file > default.
func Load() Config {
	// Missing .env is fine; explicit env vars always win.
	_ = godotenv.Load()

	return Config{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StorageDriver:     getEnv("STORAGE_DRIVER", DriverMemory),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "colibri-dev-secret-change-in-production"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 5),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
