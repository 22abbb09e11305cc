// Package sysinfo provides read-only host inspection probes. Each probe shells
// out to the standard tool and returns its raw text for callers to format.
package sysinfo

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=sysinfo.go -destination=mocks/sysinfo.gen.go -package=mocks

// Inspector interface provides host inspection capabilities.
type Inspector interface {
	// Uptime returns the host uptime line.
	Uptime() (string, error)

	// Memory returns the memory usage table.
	Memory() (string, error)

	// DiskFree returns the filesystem usage table.
	DiskFree() (string, error)

	// Processes returns the process table sorted by CPU usage descending.
	Processes() (string, error)

	// RecentLogins returns the count most recent login records.
	RecentLogins(count int) (string, error)

	// DiskUsage returns per-child disk usage of dir in kilobytes.
	DiskUsage(dir string) (string, error)
}

type realInspector struct {
	// No fields needed for basic inspection operations
}

// NewInspector creates a new Inspector instance.
func NewInspector() Inspector {
	return &realInspector{}
}

// run executes a probe command, returning its standard output. Standard error
// is kept out of the returned text and surfaced as the error detail instead.
func (i *realInspector) run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w (stderr: %s)",
			name, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
