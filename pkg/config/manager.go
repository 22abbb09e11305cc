// Package config provides configuration management functionality for the opskit application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"opskit/configs"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	CreateConfigDirectory() error
	GetConfigPath() string
	DefaultConfig() Config
	EnsureConfigFile() (Config, bool, error)
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Fill unset fields from defaults
	defaults := c.DefaultConfig()
	if config.TodoFile == "" {
		config.TodoFile = defaults.TodoFile
	}
	if config.LogFile == "" {
		config.LogFile = defaults.LogFile
	}

	// Apply environment variable overrides
	config.applyEnvOverrides()

	// Expand tildes in configuration paths
	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default if not found.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	// Try to load from file first
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	config := c.DefaultConfig()
	config.applyEnvOverrides()
	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}
	return config, nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	// Create config directory if it doesn't exist
	if err := c.CreateConfigDirectory(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal configuration to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// Write configuration file
	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// CreateConfigDirectory creates the configuration directory structure.
func (c *realManager) CreateConfigDirectory() error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return Config{
		TodoFile: filepath.Join(homeDir, ".opskit", "todo.txt"),
		LogFile:  "opskit.log",
	}
}

// EnsureConfigFile writes the embedded default configuration to the config
// path if no file exists there yet, then loads whatever the path holds. The
// returned bool reports whether a new file was written.
func (c *realManager) EnsureConfigFile() (Config, bool, error) {
	created := false

	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		if err := c.CreateConfigDirectory(); err != nil {
			return Config{}, false, err
		}

		if err := os.WriteFile(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
			return Config{}, false, fmt.Errorf("failed to write configuration file: %w", err)
		}
		created = true
	}

	config, err := c.GetConfig()
	if err != nil {
		return Config{}, created, err
	}

	return config, created, nil
}
