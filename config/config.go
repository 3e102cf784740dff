package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the store API.
type Config struct {
	MongoURI string
	Database string
	Port     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	GeminiAPIKey string

	StoreBaseURL string

	CartTTL          time.Duration
	CacheRefreshTick time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MongoURI: env("MONGO_URI", "mongodb://localhost:27017/"),
		Database: env("MONGO_DATABASE", "louay-store"),
		Port:     env("PORT", ":8080"),

		RedisHost:     env("REDIS_HOST", "localhost"),
		RedisPort:     env("REDIS_PORT", "6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       intEnv("REDIS_DB", 0),

		JWTSecret: env("JWT_SECRET", "change-me-in-production"),
		// The admin panel signs in with a single fixed account.
		AdminEmail:    env("ADMIN_EMAIL", "admin@louay.store"),
		AdminPassword: env("ADMIN_PASSWORD", ""),

		GeminiAPIKey: env("GEMINI_API_KEY", ""),

		StoreBaseURL: env("STORE_BASE_URL", "https://louay.store"),

		CartTTL:          durationEnv("CART_TTL", 7*24*time.Hour),
		CacheRefreshTick: durationEnv("CACHE_REFRESH_TICK", 10*time.Second),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
