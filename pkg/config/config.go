package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogFileEnvVar overrides the log sink path when set.
const LogFileEnvVar = "OPSKIT_LOG_FILE"

// Config represents the opskit configuration.
type Config struct {
	// TodoFile is the newline-delimited todo store path.
	TodoFile string `yaml:"todo_file"`

	// LogFile is the append-only run log path.
	LogFile string `yaml:"log_file"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.TodoFile == "" {
		return ErrTodoFileEmpty
	}

	if c.LogFile == "" {
		return ErrLogFileEmpty
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func (c *Config) applyEnvOverrides() {
	if logFile := os.Getenv(LogFileEnvVar); logFile != "" {
		c.LogFile = logFile
	}
}

// expandTildes expands ~ prefixes in the configured paths.
func (c *Config) expandTildes() error {
	expanded, err := expandTilde(c.TodoFile)
	if err != nil {
		return err
	}
	c.TodoFile = expanded

	expanded, err = expandTilde(c.LogFile)
	if err != nil {
		return err
	}
	c.LogFile = expanded

	return nil
}

// expandTilde expands ~ to user's home directory.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
