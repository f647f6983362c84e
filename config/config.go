package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present; otherwise the process environment is used.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the variable or a fallback when unset.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
