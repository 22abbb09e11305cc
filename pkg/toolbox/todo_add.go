package toolbox

import (
	"strings"

	"opskit/pkg/todo"
)

// TodoAdd appends a task to the todo store, creating the store if absent.
func (t *realToolbox) TodoAdd(text string) error {
	task := strings.TrimSpace(text)
	if task == "" {
		return todo.ErrEmptyTask
	}

	if err := t.deps.TodoStore.Add(task); err != nil {
		t.errorf("todo: %v", err)
		return err
	}

	t.logf("todo: added %q", task)
	return nil
}
