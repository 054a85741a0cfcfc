package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL         string
	Port                string
	IsProduction        bool
	JWTSecret           string
	FrontendBaseURL     string
	RateLimit           string
	SeedDefaultAccounts bool
	MigrationsPath      string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is merged in first when present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("SEED_DEFAULT_ACCOUNTS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		FrontendBaseURL:     v.GetString("FRONTEND_BASE_URL"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		SeedDefaultAccounts: v.GetBool("SEED_DEFAULT_ACCOUNTS"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is not set")
	}

	return cfg, nil
}
