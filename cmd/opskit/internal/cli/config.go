// Package cli provides common configuration and utility functions for the opskit CLI.
package cli

import (
	"os"
	"path/filepath"

	"opskit/pkg/config"
)

var (
	// Quiet suppresses all output except results and errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// LoadConfig loads the configuration, falling back to defaults when no
// config file exists.
func LoadConfig() (config.Config, error) {
	return NewConfigManager().GetConfigWithFallback()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	var path string
	if ConfigPath != "" {
		path = ConfigPath
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".opskit", "config.yaml")
	}

	return config.NewManager(path)
}
