package config

import "os"

// Config holds the process-level settings loaded from the environment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string
	// PublicBaseURL is the externally reachable base URL embedded in the
	// per-product action links (api_urls).
	PublicBaseURL string
	// JWTSecret signs optional bearer tokens. Empty disables token parsing.
	JWTSecret string
}

func Load() Config {
	return Config{
		Addr:          getEnv("SHOP_ADDR", ":8001"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PublicBaseURL: getEnv("SHOP_PUBLIC_BASE_URL", "http://localhost:8001"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
