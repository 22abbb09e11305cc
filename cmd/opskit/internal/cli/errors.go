// Package cli provides common configuration and utility functions for the opskit CLI.
package cli

import "errors"

// Error definitions for the cli package.
var (
	// Configuration loading errors.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
)
