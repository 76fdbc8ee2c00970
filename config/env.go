package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file when one exists. In deployed
// environments the variables come from the process environment instead.
func LoadEnv() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		log.Println(".env file not found, using system environment variables")
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	log.Println("Environment variables loaded")
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// MustGetEnv is for variables the process cannot run without; a missing
// value is a fatal startup condition.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return value
}
