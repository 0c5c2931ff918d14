package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the irradiance API.
type Config struct {
	Port        int
	BearerToken string
	CacheSize   int
	Debug       bool
}

// LoadConfig reads configuration from environment variables (optionally
// a .env file).
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:      8080,
		CacheSize: 256,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
		cfg.Port = port
	}

	if sizeStr := os.Getenv("CACHE_SIZE"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return cfg, fmt.Errorf("invalid CACHE_SIZE: %s", sizeStr)
		}
		cfg.CacheSize = size
	}

	if debugStr := os.Getenv("DEBUG"); debugStr != "" {
		debug, err := strconv.ParseBool(debugStr)
		if err != nil {
			return cfg, fmt.Errorf("invalid DEBUG: %s", debugStr)
		}
		cfg.Debug = debug
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
