package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	App struct {
		Port     string
		LogLevel zerolog.Level
	}
	UsersAPI struct {
		URL     string
		Timeout time.Duration
	}
	Session struct {
		CookieName string
		TTL        time.Duration
	}
	Stub struct {
		Port     string
		SeedFile string
	}
}

// Load reads an optional .env file at path and then the process
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = getEnv("APP_PORT", "8080")

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.App.LogLevel = level

	cfg.UsersAPI.URL = getEnv("USERS_API_URL", "http://localhost:8081")
	cfg.UsersAPI.Timeout, err = getDuration("USERS_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.Session.CookieName = getEnv("SESSION_COOKIE", "user_admin_session")
	cfg.Session.TTL, err = getDuration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg.Stub.Port = getEnv("STUB_PORT", "8081")
	cfg.Stub.SeedFile = os.Getenv("STUB_SEED_FILE")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
