//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ExecuteCommand(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	// Test command output capture
	output, err := fs.ExecuteCommand(tempDir, "echo", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", output)

	// Test that the command runs in the given directory
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "marker.txt"), []byte("x"), 0644))
	output, err = fs.ExecuteCommand(tempDir, "ls")
	require.NoError(t, err)
	assert.Contains(t, output, "marker.txt")

	// Test non-existing command
	_, err = fs.ExecuteCommand(tempDir, "non-existing-command-xyz123")
	assert.Error(t, err)
}

func TestFS_ExecuteCommand_FailureIncludesOutput(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	// ls on a missing path fails and its stderr ends up in the wrapped error
	_, err := fs.ExecuteCommand(tempDir, "ls", "definitely-missing-path")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ls failed"))
}
