package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Config carries everything the server needs and is built once in main; no
// package holds configuration globals.
type Config struct {
	Port            string
	Environment     string
	DBPath          string
	AccessSecret    []byte
	RefreshSecret   []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("APP_ENV", "development"),
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "lifeboard.db")),
		AccessSecret:    []byte(getEnv("JWT_ACCESS_SECRET", "change_me_in_production")),
		RefreshSecret:   []byte(getEnv("JWT_REFRESH_SECRET", "change_me_too_in_production")),
		AccessTokenTTL:  getEnvDuration("JWT_ACCESS_TTL", DefaultAccessTokenTTL),
		RefreshTokenTTL: getEnvDuration("JWT_REFRESH_TTL", DefaultRefreshTokenTTL),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
