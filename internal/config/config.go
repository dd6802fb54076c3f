// Package config loads welboard runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds server and client settings. Credentials are held in memory
// only and are never written to local storage.
type Config struct {
	Port           int    `env:"WELBOARD_PORT" envDefault:"8080"`
	DataDir        string `env:"WELBOARD_DATA_DIR"`
	CachePath      string `env:"WELBOARD_CACHE_PATH"`
	BaseURL        string `env:"WELBOARD_WELSTORY_URL" envDefault:"https://welplus.welstory.com"`
	RestaurantCode string `env:"WELBOARD_RESTAURANT"`
	Username       string `env:"WELBOARD_USERNAME"`
	Password       string `env:"WELBOARD_PASSWORD"`
	Dev            bool   `env:"WELBOARD_DEV"`
}

// Load reads configuration from environment variables and fills in
// home-directory defaults for the storage paths.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DataDir == "" || cfg.CachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(home, ".welboard")
		}
		if cfg.CachePath == "" {
			cfg.CachePath = filepath.Join(home, ".welboard", "menucache.db")
		}
	}

	return cfg, nil
}
