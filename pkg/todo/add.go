package todo

import (
	"fmt"
	"strings"
)

// Add appends a task line to the store, creating the file if absent.
func (s *realStore) Add(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}

	// Load current tasks
	tasks, err := s.loadTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	// Append and save
	tasks = append(tasks, task)

	if err := s.saveTasks(tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	return nil
}
