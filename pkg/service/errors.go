// Package service provides service manager functionality and error definitions.
package service

import "errors"

// Error definitions for service package.
var (
	ErrManagerUnavailable = errors.New("no service manager available on this host")
	ErrServiceNotFound    = errors.New("service not found")
)
