//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	// Test existing directory
	exists, err := fs.Exists(tempDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test existing file
	testFile := filepath.Join(tempDir, "exists.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0644))
	exists, err = fs.Exists(testFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test non-existing path
	exists, err = fs.Exists(filepath.Join(tempDir, "missing.txt"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	// Test directory
	isDir, err := fs.IsDir(tempDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	// Test regular file
	testFile := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0644))
	isDir, err = fs.IsDir(testFile)
	assert.NoError(t, err)
	assert.False(t, isDir)

	// Test non-existing path
	_, err = fs.IsDir(filepath.Join(tempDir, "missing"))
	assert.Error(t, err)
}

func TestFS_Stat(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "stat.txt")
	testData := []byte("some data")
	require.NoError(t, os.WriteFile(testFile, testData, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, int64(len(testData)), info.Size())
	assert.False(t, info.IsDir())

	// Test non-existing path
	_, err = fs.Stat(filepath.Join(tempDir, "missing.txt"))
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_ReadFile(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "read.txt")
	testData := []byte("read me")
	require.NoError(t, os.WriteFile(testFile, testData, 0644))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testData, content)

	// Test non-existing file
	_, err = fs.ReadFile(filepath.Join(tempDir, "missing.txt"))
	assert.Error(t, err)
}

func TestFS_Glob(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "app.log"), []byte("log"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "sys.log"), []byte("log"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("txt"), 0644))

	matches, err := fs.Glob(filepath.Join(tempDir, "*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = fs.Glob(filepath.Join(tempDir, "*.gz"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFS_MkdirAll(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "a", "b", "c")

	err := fs.MkdirAll(nested, 0755)
	require.NoError(t, err)

	isDir, err := fs.IsDir(nested)
	require.NoError(t, err)
	assert.True(t, isDir)

	// Creating an existing directory should not fail
	err = fs.MkdirAll(nested, 0755)
	assert.NoError(t, err)
}

func TestFS_Remove(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "remove.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0644))

	err := fs.Remove(testFile)
	require.NoError(t, err)

	exists, err := fs.Exists(testFile)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing a non-existing file should fail
	err = fs.Remove(testFile)
	assert.Error(t, err)
}

func TestFS_CreateFileIfNotExists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nested", "dir", "file.txt")

	// Creates parent directories and the file
	err := fs.CreateFileIfNotExists(testFile, []byte("initial"), 0644)
	require.NoError(t, err)

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("initial"), content)

	// Existing file is left untouched
	err = fs.CreateFileIfNotExists(testFile, []byte("other"), 0644)
	require.NoError(t, err)

	content, err = fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("initial"), content)
}

func TestFS_GetHomeDir(t *testing.T) {
	fs := NewFS()

	homeDir, err := fs.GetHomeDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, homeDir)
}
