package todo

import "fmt"

// List returns all tasks in insertion order.
func (s *realStore) List() ([]string, error) {
	tasks, err := s.loadTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return tasks, nil
}
