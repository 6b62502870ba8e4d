package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	DB_HOST  string
	DB_PORT  string
	DB_NAME  string
	DB_LOGIN string
	DB_PASS  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	DB_HOST = mustEnv("FSTR_DB_HOST")
	DB_PORT = getEnv("FSTR_DB_PORT", "5432")
	DB_NAME = mustEnv("FSTR_DB_NAME")
	DB_LOGIN = mustEnv("FSTR_DB_LOGIN")
	DB_PASS = mustEnv("FSTR_DB_PASS")
}

// DatabaseURL builds the postgres DSN from the FSTR_DB_* variables.
func DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", DB_LOGIN, DB_PASS, DB_HOST, DB_PORT, DB_NAME)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
