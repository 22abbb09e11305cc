// Package toolbox provides the opskit command operations and error definitions.
package toolbox

import "errors"

// Error definitions for toolbox operations.
var (
	// Precondition errors.
	ErrMissingDependency = errors.New("required tool is not installed")
	ErrSourceNotFound    = errors.New("source path does not exist")
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// Calc errors.
	ErrUnknownOperation  = errors.New("unknown calc operation")
	ErrWrongOperandCount = errors.New("calc operations take two or three operands")
	ErrInvalidOperand    = errors.New("operand is not a number")
	ErrDivisionByZero    = errors.New("division by zero")

	// Deploy errors.
	ErrNotARepository   = errors.New("not a git repository: .git not found")
	ErrDirtyWorkTree    = errors.New("working tree has uncommitted changes")
	ErrDeployHookFailed = errors.New("deploy hook failed")
)
