package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port    string
	GinMode string

	// Database
	DatabaseURL string

	// Sessions
	SessionSecret string
	SessionName   string
	CookieSecure  bool

	// CORS
	CORSOrigins []string

	// Redis (rate limiting is disabled when empty)
	RedisURL           string
	RateLimitPerMinute int

	// Pagination
	DefaultPageLimit int
	MaxPageLimit     int
}

const defaultSessionSecret = "secret_key_change_me"

func Load() (*Config, error) {
	// .env is optional; the process environment wins either way
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),

		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=discuss port=5432 sslmode=disable"),

		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionName:   getEnv("SESSION_NAME", "forum_session"),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		DefaultPageLimit: getEnvInt("DEFAULT_PAGE_LIMIT", 10),
		MaxPageLimit:     getEnvInt("MAX_PAGE_LIMIT", 100),
	}

	if cfg.DefaultPageLimit < 1 {
		cfg.DefaultPageLimit = 10
	}
	if cfg.MaxPageLimit < cfg.DefaultPageLimit {
		cfg.MaxPageLimit = cfg.DefaultPageLimit
	}

	return cfg, nil
}

// UsingDefaultSecret reports whether sessions are signed with the built-in fallback key.
func (c *Config) UsingDefaultSecret() bool {
	return c.SessionSecret == defaultSessionSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
