package todo

import "fmt"

// Clear removes every task from the store.
func (s *realStore) Clear() error {
	if err := s.saveTasks(nil); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	return nil
}
