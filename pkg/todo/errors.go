// Package todo provides todo store functionality and error definitions.
package todo

import "errors"

// Error definitions for todo package.
var (
	ErrEmptyTask       = errors.New("task text cannot be empty")
	ErrIndexOutOfRange = errors.New("todo index out of range")
)
