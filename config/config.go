package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings, loaded once at startup and treated as
// immutable afterward.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string
	// AuthJWTSecret verifies bearer tokens issued by the auth provider
	// (HS256 shared secret).
	AuthJWTSecret string
	// ReminderCron is the 6-field cron spec of the daily reminder job.
	ReminderCron string
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		ReminderCron:  getenv("REMINDER_CRON", "0 0 6 * * *"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AuthJWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
