// Package exitcode defines the process exit codes returned by the opskit binary.
package exitcode

// Exit codes. Every command maps its failure onto exactly one of these.
const (
	// Success indicates the command completed without error. A declined
	// confirmation prompt is a deliberate no-op and also exits with Success.
	Success = 0

	// Failure indicates an error that fits no more specific category.
	Failure = 1

	// Usage indicates a usage error: unknown command, wrong argument count,
	// or an argument of the wrong shape. Signaled before any side effect.
	Usage = 2

	// MissingDependency indicates a required external tool is not installed
	// on the execution path.
	MissingDependency = 3

	// Precondition indicates a command precondition was violated: a dirty
	// git working tree, a missing source path, an unknown service, an
	// out-of-range todo index.
	Precondition = 4

	// ExternalTool indicates an invoked external tool itself reported
	// failure.
	ExternalTool = 5
)
