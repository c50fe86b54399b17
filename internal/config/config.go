package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	ContentDir string
	PublicDir  string

	JWTSecret  string
	SessionTTL time.Duration

	GeminiModel string

	DefaultPassword string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		ContentDir: getEnv("CONTENT_DIR", "samplemd"),
		PublicDir:  getEnv("PUBLIC_DIR", "public"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DefaultPassword: getEnv("DEFAULT_PASSWORD", "pass123"),
	}

	ttl := 24 * time.Hour
	if hoursStr := os.Getenv("SESSION_TTL_HOURS"); hoursStr != "" {
		if hours, err := strconv.Atoi(hoursStr); err == nil {
			ttl = time.Duration(hours) * time.Hour
		}
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}

func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
