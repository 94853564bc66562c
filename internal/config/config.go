// Package config loads runtime settings from the environment. main calls
// godotenv.Load first so a local .env file works in development.
package config

import "os"

// Config carries every setting the server reads at startup.
type Config struct {
	Port        string // HTTP listen port
	DatabaseURL string // postgres DSN; empty means the in-memory store
	RedisAddr   string // redis host:port; empty disables notification fan-out
	AIBaseURL   string // completion API root; empty disables annotation
	AIAPIKey    string
	AIModel     string
	JWTSecret   string
}

// Load reads the environment, applying defaults for anything unset.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		AIBaseURL:   os.Getenv("AI_API_URL"),
		AIAPIKey:    os.Getenv("AI_API_KEY"),
		AIModel:     getenv("AI_MODEL", "gpt-4o-mini"),
		JWTSecret:   getenv("JWT_SECRET", "hrdesk-dev-secret"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
