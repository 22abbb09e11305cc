package toolbox

import "fmt"

// TodoClear empties the todo store after an explicit confirmation. A declined
// confirmation returns false without touching the store and is not an error.
func (t *realToolbox) TodoClear() (bool, error) {
	confirmed, err := t.deps.Prompt.Confirm("Delete all todos?", false)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		t.logf("todo: clear cancelled")
		return false, nil
	}

	if err := t.deps.TodoStore.Clear(); err != nil {
		t.errorf("todo: %v", err)
		return false, err
	}

	t.logf("todo: cleared all tasks")
	return true, nil
}
