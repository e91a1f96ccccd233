package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	ClientOrigin    string
	LogFile         string
	SpawnIntervalMs int
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ClientOrigin:    getEnv("CLIENT_ORIGIN", "*"),
		LogFile:         getEnv("LOG_FILE", "logs/server.log"),
		SpawnIntervalMs: getEnvInt("SPAWN_INTERVAL_MS", 3000),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
