//go:build unit

package toolbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"opskit/pkg/dependencies"
	"opskit/pkg/logger"
	"opskit/pkg/todo"
	todomocks "opskit/pkg/todo/mocks"
)

// TestTodoDone tests completion of a task by its 1-based index.
func TestTodoDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := todomocks.NewMockStore(ctrl)
	mockStore.EXPECT().Remove(2).Return("walk the dog", nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithTodoStore(mockStore).
			WithLogger(logger.NewNoopLogger()),
	}

	task, err := tb.TodoDone(2)
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", task)
}

// TestTodoDone_OutOfRange tests that an out-of-range index propagates the
// store error.
func TestTodoDone_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := todomocks.NewMockStore(ctrl)
	mockStore.EXPECT().Remove(9).
		Return("", fmt.Errorf("%w: %d (store has %d tasks)", todo.ErrIndexOutOfRange, 9, 2))

	tb := &realToolbox{
		deps: dependencies.New().
			WithTodoStore(mockStore).
			WithLogger(logger.NewNoopLogger()),
	}

	_, err := tb.TodoDone(9)
	assert.Error(t, err)
	assert.ErrorIs(t, err, todo.ErrIndexOutOfRange)
}
