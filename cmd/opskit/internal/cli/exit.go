package cli

import (
	"errors"
	"fmt"

	"opskit/pkg/exitcode"
	"opskit/pkg/service"
	"opskit/pkg/todo"
	"opskit/pkg/toolbox"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CommandError wraps a command failure with its mapped exit code. A nil
// error passes through unchanged so handlers can return it directly.
func CommandError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: classify(err), Err: err}
}

// UsageError wraps an argument parsing failure with the usage exit code.
func UsageError(err error) error {
	return &ExitError{Code: exitcode.Usage, Err: err}
}

// classify maps a command failure onto its exit code. Failures that match
// no known sentinel come from an external tool run.
func classify(err error) int {
	switch {
	case errors.Is(err, toolbox.ErrUnknownOperation),
		errors.Is(err, toolbox.ErrWrongOperandCount),
		errors.Is(err, toolbox.ErrInvalidOperand),
		errors.Is(err, todo.ErrEmptyTask):
		return exitcode.Usage
	case errors.Is(err, toolbox.ErrMissingDependency),
		errors.Is(err, service.ErrManagerUnavailable):
		return exitcode.MissingDependency
	case errors.Is(err, toolbox.ErrDivisionByZero),
		errors.Is(err, toolbox.ErrSourceNotFound),
		errors.Is(err, toolbox.ErrDirectoryNotFound),
		errors.Is(err, toolbox.ErrNotARepository),
		errors.Is(err, toolbox.ErrDirtyWorkTree),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, todo.ErrIndexOutOfRange):
		return exitcode.Precondition
	case errors.Is(err, ErrFailedToLoadConfig):
		return exitcode.Failure
	default:
		return exitcode.ExternalTool
	}
}
