// Package config handles configuration loading for the todo API.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	AllowedOrigins   []string
	Port             string
	Environment      string
}

// Load reads configuration from environment variables. A local .env file,
// if present, is loaded first.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:           GetEnvRequired("DB_HOST"),
		DBPort:           GetEnv("DB_PORT", "5432"),
		DBUser:           GetEnvRequired("DB_USER"),
		DBPassword:       GetEnvRequired("DB_PASSWORD"),
		DBName:           GetEnvRequired("DB_NAME"),
		RedisHost:        GetEnvRequired("REDIS_HOST"),
		RedisPort:        GetEnv("REDIS_PORT", "6379"),
		RedisPassword:    GetEnv("REDIS_PASSWORD", ""),
		JWTSecret:        GetEnvRequired("JWT_SECRET"),
		JWTAccessExpiry:  parseDuration(GetEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(GetEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),
		AllowedOrigins:   splitList(GetEnv("ALLOWED_ORIGINS", "")),
		Port:             GetEnv("PORT", "8080"),
		Environment:      GetEnv("ENVIRONMENT", "development"),
	}
}

// GetEnv returns the environment variable value or a default when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the environment variable value or exits the process.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
