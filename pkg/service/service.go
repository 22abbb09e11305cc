package service

import (
	"opskit/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks/service.gen.go -package=mocks

// State represents the reported state of a service.
type State string

// Service states.
const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// Manager interface provides service manager client capabilities.
type Manager interface {
	// Status reports whether the named service is active.
	Status(name string) (State, error)

	// Restart restarts the named service.
	Restart(name string) error
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new service Manager instance.
func NewManager(fs fs.FS) Manager {
	return &realManager{
		fs: fs,
	}
}
