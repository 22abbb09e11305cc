// Package logger provides the append-only run log shared by all opskit commands.
package logger

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Errorf logs a formatted failure message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// SinkOptions configures a sink logger.
type SinkOptions struct {
	// Path is the log file appended to on every run.
	Path string

	// Verbose mirrors every line to stderr in addition to the file.
	Verbose bool
}

// sinkLogger appends timestamped lines to a log file.
type sinkLogger struct {
	mu  sync.Mutex
	log *charmlog.Logger
}

// NewSinkLogger creates a logger that appends timestamped lines to the file
// at opts.Path. The file is opened in append mode and is never rotated or
// truncated here. If the file cannot be opened the logger falls back to
// stderr so a broken log destination never fails the command being logged.
func NewSinkLogger(opts SinkOptions) Logger {
	var writers []io.Writer

	file, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		writers = append(writers, file)
	}
	if opts.Verbose || err != nil {
		writers = append(writers, os.Stderr)
	}

	l := charmlog.NewWithOptions(io.MultiWriter(writers...), charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})

	return &sinkLogger{log: l}
}

// Logf writes a formatted message at info level with thread safety.
func (s *sinkLogger) Logf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Infof(format, args...)
}

// Errorf writes a formatted message at error level with thread safety.
func (s *sinkLogger) Errorf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Errorf(format, args...)
}
