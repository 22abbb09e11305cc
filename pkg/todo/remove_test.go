//go:build unit

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	fsmocks "opskit/pkg/fs/mocks"
)

func TestRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	store := &realStore{
		fs:   mockFS,
		path: "/home/user/.opskit/todo.txt",
	}

	mockFS.EXPECT().Exists("/home/user/.opskit/todo.txt").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.opskit/todo.txt").Return([]byte("first\nsecond\nthird\n"), nil)
	mockFS.EXPECT().FileLock("/home/user/.opskit/todo.txt").Return(func() {}, nil)
	mockFS.EXPECT().WriteFileAtomic("/home/user/.opskit/todo.txt", []byte("first\nthird\n"), gomock.Any()).Return(nil)

	removed, err := store.Remove(2)

	assert.NoError(t, err)
	assert.Equal(t, "second", removed)
}

func TestRemove_LastTaskLeavesEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	store := &realStore{
		fs:   mockFS,
		path: "/home/user/.opskit/todo.txt",
	}

	mockFS.EXPECT().Exists("/home/user/.opskit/todo.txt").Return(true, nil)
	mockFS.EXPECT().ReadFile("/home/user/.opskit/todo.txt").Return([]byte("only task\n"), nil)
	mockFS.EXPECT().FileLock("/home/user/.opskit/todo.txt").Return(func() {}, nil)
	mockFS.EXPECT().WriteFileAtomic("/home/user/.opskit/todo.txt", []byte(nil), gomock.Any()).Return(nil)

	removed, err := store.Remove(1)

	assert.NoError(t, err)
	assert.Equal(t, "only task", removed)
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	store := &realStore{
		fs:   mockFS,
		path: "/home/user/.opskit/todo.txt",
	}

	tests := []struct {
		name  string
		index int
	}{
		{name: "zero index", index: 0},
		{name: "negative index", index: -1},
		{name: "index past end", index: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No lock or write expected: the store stays unchanged
			mockFS.EXPECT().Exists("/home/user/.opskit/todo.txt").Return(true, nil)
			mockFS.EXPECT().ReadFile("/home/user/.opskit/todo.txt").Return([]byte("first\nsecond\n"), nil)

			_, err := store.Remove(tt.index)

			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}
