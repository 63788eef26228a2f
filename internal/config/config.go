package config

import (
	"os"

	"github.com/joho/godotenv"

	"workboard/internal/constants"
)

type Config struct {
	Addr          string
	DatabasePath  string
	StateKey      string
	SessionSecret string
	GinMode       string
}

func Load() *Config {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("HTTP_ADDR", ":8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "workboard.db"),
		StateKey:      getEnv("STATE_KEY", constants.AppStateKey),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
