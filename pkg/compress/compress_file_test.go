//go:build integration

package compress

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressor_Compress(t *testing.T) {
	if _, err := exec.LookPath("gzip"); err != nil {
		t.Skip("gzip not available")
	}

	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "app.log")
	require.NoError(t, os.WriteFile(logFile, []byte("line one\nline two\n"), 0644))

	compressor := NewCompressor()
	err := compressor.Compress(logFile)
	require.NoError(t, err)

	// Original is replaced by the compressed file
	_, err = os.Stat(logFile)
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(logFile + ".gz")
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCompressor_Compress_MissingFile(t *testing.T) {
	if _, err := exec.LookPath("gzip"); err != nil {
		t.Skip("gzip not available")
	}

	compressor := NewCompressor()
	err := compressor.Compress(filepath.Join(t.TempDir(), "missing.log"))
	assert.Error(t, err)
}
