package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds CLI-level settings. The engine itself takes everything from
// the model bundle; this file only remembers defaults between invocations.
type Config struct {
	// ModelPath is the model bundle (directory or .zip) used when a
	// command is run without an explicit --model flag.
	ModelPath string `json:"model_path,omitempty"`

	// DefaultIntents restricts parsing to these intents unless a command
	// overrides the filter. Empty means no restriction.
	DefaultIntents []string `json:"default_intents,omitempty"`
}

var (
	configDir  string
	configPath string
)

func init() {
	homeDir := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	}
	configDir = filepath.Join(homeDir, ".config", "parlance")
	configPath = filepath.Join(configDir, "config.json")
}

// ensureConfigDir creates the config directory if it doesn't exist
func ensureConfigDir() error {
	return os.MkdirAll(configDir, 0700)
}

// Load loads the configuration from file. A missing file is not an error:
// it yields the zero config.
func Load() (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	if err := ensureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0600)
}

// Path returns the config file location (for display purposes).
func Path() string {
	return configPath
}
