package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultLogLevel is used when LOG_LEVEL is unset.
const DefaultLogLevel = "info"

// LoadEnv loads environment variables from the given .env files, or from
// ./.env when none are given. A missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return fmt.Errorf("error loading .env file: %w", err)
		}
	}
	return nil
}

// LogLevel returns the LOG_LEVEL environment variable or the default.
func LogLevel() string {
	return getEnv("LOG_LEVEL", DefaultLogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
