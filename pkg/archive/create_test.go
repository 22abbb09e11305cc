//go:build integration

package archive

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiver_Create(t *testing.T) {
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not available")
	}

	tempDir := t.TempDir()
	sourceDir := filepath.Join(tempDir, "payload")
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "a.txt"), []byte("alpha"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "nested", "b.txt"), []byte("beta"), 0644))

	destPath := filepath.Join(tempDir, "payload.tar.gz")

	archiver := NewArchiver()
	err := archiver.Create(destPath, sourceDir)
	require.NoError(t, err)

	// Archive exists and is non-empty
	info, err := os.Stat(destPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Entries are stored relative to the source's parent, never absolute
	listing, err := exec.Command("tar", "-tzf", destPath).Output()
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(listing)), "\n") {
		assert.True(t, strings.HasPrefix(line, "payload"), "entry %q should be relative to the source parent", line)
		assert.False(t, strings.HasPrefix(line, "/"), "entry %q should not be absolute", line)
	}
}

func TestArchiver_Create_MissingSource(t *testing.T) {
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar not available")
	}

	tempDir := t.TempDir()
	destPath := filepath.Join(tempDir, "out.tar.gz")

	archiver := NewArchiver()
	err := archiver.Create(destPath, filepath.Join(tempDir, "does-not-exist"))
	assert.Error(t, err)
}
