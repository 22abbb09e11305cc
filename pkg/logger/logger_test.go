//go:build integration

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
	logger.Errorf("test error: %s", "value")
}

func TestSinkLogger_AppendsTimestampedLines(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "opskit.log")

	logger := NewSinkLogger(SinkOptions{Path: logFile})
	logger.Logf("backup completed: %s", "/tmp/archive.tar.gz")
	logger.Errorf("deploy failed: %s", "dirty work tree")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "backup completed: /tmp/archive.tar.gz")
	assert.Contains(t, text, "deploy failed: dirty work tree")

	// Each line carries a timestamp prefix
	assert.Regexp(t, `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`, text)
}

func TestSinkLogger_AppendsAcrossInstances(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "opskit.log")

	first := NewSinkLogger(SinkOptions{Path: logFile})
	first.Logf("first run")

	second := NewSinkLogger(SinkOptions{Path: logFile})
	second.Logf("second run")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	// Both lines survive: the sink is append-only
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
}

func TestSinkLogger_UnwritablePathDoesNotPanic(t *testing.T) {
	// Opening the sink under a file (not a directory) fails, which must
	// degrade to stderr instead of failing the command
	logger := NewSinkLogger(SinkOptions{Path: "/dev/null/opskit.log"})
	logger.Logf("still works")
	logger.Errorf("still works: %s", "too")
}

func TestSinkLogger_ThreadSafety(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "opskit.log")
	logger := NewSinkLogger(SinkOptions{Path: logFile})

	// Test concurrent access
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			logger.Logf("concurrent message from goroutine %d", id)
			done <- true
		}(i)
	}

	// Wait for all goroutines to complete
	for i := 0; i < 10; i++ {
		<-done
	}

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "concurrent message from goroutine")
}
