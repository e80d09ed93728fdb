package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	RemoteURL     string
	RemoteTimeout time.Duration
	MinLatency    time.Duration
	WebhookURL    string
	WebhookSecret string
	APIKey        string
}

// LoadConfig reads .env file and returns a Config struct
func LoadConfig() *Config {
	// Try loading .env file (it might not exist in Production, which is fine)
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on System Env Variables")
	}

	return &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		RemoteURL:     getEnv("REMOTE_URL", ""),
		RemoteTimeout: getDurationMs("REMOTE_TIMEOUT_MS", 3000),
		MinLatency:    getDurationMs("MIN_LATENCY_MS", 1500),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
		APIKey:        getEnv("API_KEY", ""),
	}
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationMs(key string, fallback int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		slog.Warn("Invalid duration value, using default", "key", key, "value", value)
	}
	return time.Duration(fallback) * time.Millisecond
}
