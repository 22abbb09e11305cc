//go:build unit

package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager_CustomPath(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = "/tmp/custom/config.yaml"
	defer func() { ConfigPath = originalConfigPath }()

	manager := NewConfigManager()

	assert.Equal(t, "/tmp/custom/config.yaml", manager.GetConfigPath())
}

func TestNewConfigManager_DefaultPath(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = ""
	defer func() { ConfigPath = originalConfigPath }()

	manager := NewConfigManager()

	assert.True(t, strings.HasSuffix(manager.GetConfigPath(), filepath.Join(".opskit", "config.yaml")))
}

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = "/tmp/nonexistent/opskit-config.yaml"
	defer func() { ConfigPath = originalConfigPath }()

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.TodoFile)
	assert.NotEmpty(t, cfg.LogFile)
}
