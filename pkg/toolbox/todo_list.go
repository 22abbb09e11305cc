package toolbox

// TodoList returns all stored tasks in insertion order. An absent or empty
// store yields an empty list.
func (t *realToolbox) TodoList() ([]string, error) {
	tasks, err := t.deps.TodoStore.List()
	if err != nil {
		t.errorf("todo: %v", err)
		return nil, err
	}

	t.logf("todo: listed %d tasks", len(tasks))
	return tasks, nil
}
