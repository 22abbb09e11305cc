//go:build unit

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"opskit/pkg/calc"
	"opskit/pkg/exitcode"
	"opskit/pkg/service"
	"opskit/pkg/todo"
	"opskit/pkg/toolbox"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown operation", toolbox.ErrUnknownOperation, exitcode.Usage},
		{"wrong operand count", fmt.Errorf("calc: %w", toolbox.ErrWrongOperandCount), exitcode.Usage},
		{"invalid operand", toolbox.ErrInvalidOperand, exitcode.Usage},
		{"empty todo task", todo.ErrEmptyTask, exitcode.Usage},
		{"missing tool", fmt.Errorf("%w: tar", toolbox.ErrMissingDependency), exitcode.MissingDependency},
		{"no service manager", service.ErrManagerUnavailable, exitcode.MissingDependency},
		{"division by zero", toolbox.ErrDivisionByZero, exitcode.Precondition},
		{"missing backup source", toolbox.ErrSourceNotFound, exitcode.Precondition},
		{"missing directory", toolbox.ErrDirectoryNotFound, exitcode.Precondition},
		{"not a repository", toolbox.ErrNotARepository, exitcode.Precondition},
		{"dirty work tree", toolbox.ErrDirtyWorkTree, exitcode.Precondition},
		{"unknown service", fmt.Errorf("%w: nginx", service.ErrServiceNotFound), exitcode.Precondition},
		{"todo index out of range", todo.ErrIndexOutOfRange, exitcode.Precondition},
		{"config load failure", fmt.Errorf("%w: parse error", ErrFailedToLoadConfig), exitcode.Failure},
		{"evaluation failure", calc.ErrEvaluation, exitcode.ExternalTool},
		{"deploy hook failure", toolbox.ErrDeployHookFailed, exitcode.ExternalTool},
		{"unclassified failure", errors.New("tar: exited with status 2"), exitcode.ExternalTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestCommandError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, CommandError(nil))
	})

	t.Run("wraps with mapped code", func(t *testing.T) {
		err := CommandError(toolbox.ErrDirtyWorkTree)

		var exitErr *ExitError
		assert.ErrorAs(t, err, &exitErr)
		assert.Equal(t, exitcode.Precondition, exitErr.Code)
	})

	t.Run("preserves the sentinel chain", func(t *testing.T) {
		wrapped := fmt.Errorf("deploy: %w", toolbox.ErrDirtyWorkTree)

		err := CommandError(wrapped)

		assert.ErrorIs(t, err, toolbox.ErrDirtyWorkTree)
		assert.Equal(t, wrapped.Error(), err.Error())
	})
}

func TestUsageError(t *testing.T) {
	err := UsageError(errors.New("invalid todo index \"abc\""))

	var exitErr *ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitcode.Usage, exitErr.Code)
}

func TestExitError_Error(t *testing.T) {
	t.Run("with underlying error", func(t *testing.T) {
		err := &ExitError{Code: exitcode.Failure, Err: errors.New("boom")}
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("without underlying error", func(t *testing.T) {
		err := &ExitError{Code: exitcode.Precondition}
		assert.Equal(t, "exit status 4", err.Error())
	})
}
