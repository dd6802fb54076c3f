package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"welboard/internal/config"
)

// FileConfig holds settings read from the optional config file at
// ~/.config/welboard/config.yaml. Environment variables take precedence.
type FileConfig struct {
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	Restaurant  string `yaml:"restaurant,omitempty"`
	WelstoryURL string `yaml:"welstory_url,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "welboard", "config.yaml"), nil
}

// loadFileConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadFileConfig() (FileConfig, error) {
	path, err := configPath()
	if err != nil {
		return FileConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// applyFileConfig fills settings the environment left empty from the
// config file.
func applyFileConfig(cfg *config.Config) {
	fc, err := loadFileConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}

	if cfg.Username == "" {
		cfg.Username = fc.Username
	}
	if cfg.Password == "" {
		cfg.Password = fc.Password
	}
	if cfg.RestaurantCode == "" {
		cfg.RestaurantCode = fc.Restaurant
	}
	if fc.WelstoryURL != "" && cfg.BaseURL == "https://welplus.welstory.com" {
		cfg.BaseURL = fc.WelstoryURL
	}
}
