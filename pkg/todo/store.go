package todo

import (
	"fmt"
	"strings"

	"opskit/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=store.go -destination=mocks/store.gen.go -package=mocks

// Store interface provides todo store management functionality.
type Store interface {
	// Add appends a task line to the store, creating the file if absent.
	Add(task string) error

	// List returns all tasks in insertion order.
	List() ([]string, error)

	// Remove deletes the task at the given 1-based index and returns its text.
	Remove(index int) (string, error)

	// Clear removes every task from the store.
	Clear() error
}

// realStore persists tasks as a plain newline-delimited text file.
type realStore struct {
	fs   fs.FS
	path string
}

// NewStore creates a new Store instance backed by the file at path.
func NewStore(fs fs.FS, path string) Store {
	return &realStore{
		fs:   fs,
		path: path,
	}
}

// loadTasks loads the task list from the store file.
func (s *realStore) loadTasks() ([]string, error) {
	// A missing store is an empty list, not an error
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check todo store existence: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read todo store: %w", err)
	}

	var tasks []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tasks = append(tasks, line)
	}

	return tasks, nil
}

// saveTasks saves the task list to the store file atomically under a file lock.
func (s *realStore) saveTasks(tasks []string) error {
	// Acquire file lock
	unlock, err := s.fs.FileLock(s.path)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	var data []byte
	if len(tasks) > 0 {
		data = []byte(strings.Join(tasks, "\n") + "\n")
	}

	// Write store file atomically
	if err := s.fs.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write todo store: %w", err)
	}

	return nil
}
