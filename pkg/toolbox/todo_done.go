package toolbox

// TodoDone removes the task at the given 1-based index and returns its text.
// An out-of-range index leaves the store unchanged.
func (t *realToolbox) TodoDone(index int) (string, error) {
	task, err := t.deps.TodoStore.Remove(index)
	if err != nil {
		t.errorf("todo: %v", err)
		return "", err
	}

	t.logf("todo: completed %q (was index %d)", task, index)
	return task, nil
}
