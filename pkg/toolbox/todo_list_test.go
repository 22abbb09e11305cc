//go:build unit

package toolbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"opskit/pkg/dependencies"
	"opskit/pkg/logger"
	todomocks "opskit/pkg/todo/mocks"
)

// TestTodoList tests that stored tasks come back in insertion order.
func TestTodoList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := todomocks.NewMockStore(ctrl)
	mockStore.EXPECT().List().Return([]string{"buy milk", "walk the dog"}, nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithTodoStore(mockStore).
			WithLogger(logger.NewNoopLogger()),
	}

	tasks, err := tb.TodoList()
	require.NoError(t, err)
	assert.Equal(t, []string{"buy milk", "walk the dog"}, tasks)
}

// TestTodoList_EmptyStore tests that an absent store yields an empty list.
func TestTodoList_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := todomocks.NewMockStore(ctrl)
	mockStore.EXPECT().List().Return([]string{}, nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithTodoStore(mockStore).
			WithLogger(logger.NewNoopLogger()),
	}

	tasks, err := tb.TodoList()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
