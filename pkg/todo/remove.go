package todo

import "fmt"

// Remove deletes the task at the given 1-based index and returns its text.
// An out-of-range index leaves the store unchanged.
func (s *realStore) Remove(index int) (string, error) {
	// Load current tasks
	tasks, err := s.loadTasks()
	if err != nil {
		return "", fmt.Errorf("failed to load tasks: %w", err)
	}

	if index < 1 || index > len(tasks) {
		return "", fmt.Errorf("%w: %d (store has %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}

	// Remove the indexed task, shifting later entries down by one
	removed := tasks[index-1]
	tasks = append(tasks[:index-1], tasks[index:]...)

	if err := s.saveTasks(tasks); err != nil {
		return "", fmt.Errorf("failed to save tasks: %w", err)
	}

	return removed, nil
}
