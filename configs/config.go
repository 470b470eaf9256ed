package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

// ConfigFloat reads a numeric setting, falling back to def when the
// variable is unset or malformed.
func ConfigFloat(key string, def float64) float64 {
	raw := Config(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: invalid value for %s (%q), using default %v", key, raw, def)
		return def
	}
	return v
}
