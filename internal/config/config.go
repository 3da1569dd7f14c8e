package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/erazemk/freshkeeper/internal/api"
)

// Config holds client configuration.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	Token       string
	Email       string
	Password    string
	Lang        string
	LogPath     string
	Debug       bool
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIBaseURL: GetEnv("FRESHKEEPER_API_BASE_URL", api.DefaultBaseURL),
		Token:      GetEnv("FRESHKEEPER_TOKEN", ""),
		Email:      GetEnv("FRESHKEEPER_EMAIL", ""),
		Password:   GetEnv("FRESHKEEPER_PASSWORD", ""),
		Lang:       GetEnv("FRESHKEEPER_LANG", ""),
		LogPath:    GetEnv("FRESHKEEPER_LOG", ""),
	}

	cfg.HTTPTimeout = api.DefaultTimeout
	if secs, err := strconv.Atoi(GetEnv("FRESHKEEPER_HTTP_TIMEOUT_SECONDS", "")); err == nil && secs > 0 {
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	cfg.Debug, _ = strconv.ParseBool(GetEnv("FRESHKEEPER_DEBUG", "false"))

	return cfg, nil
}

// GetEnv retrieves an environment variable or returns a default value.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
