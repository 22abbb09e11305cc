package toolbox

import (
	"fmt"

	"opskit/pkg/dependencies"
	"opskit/pkg/logger"
	"opskit/pkg/service"
)

// Toolbox interface provides the opskit command operations.
type Toolbox interface {
	// Calc evaluates an arithmetic expression or applies a named operation.
	Calc(params CalcParams) (string, error)
	// Backup archives a source path into a compressed tar archive.
	Backup(params BackupParams) (BackupResult, error)
	// RecentLogins fetches the most recent login records.
	RecentLogins(params LoginsParams) (string, error)
	// DiskUsageReport lists the largest entries under a directory.
	DiskUsageReport(params DiskUsageParams) ([]DirUsage, error)
	// TodoAdd appends a task to the todo store.
	TodoAdd(text string) error
	// TodoList returns all stored tasks in insertion order.
	TodoList() ([]string, error)
	// TodoDone removes the task at the given 1-based index.
	TodoDone(index int) (string, error)
	// TodoClear empties the todo store after an explicit confirmation.
	TodoClear() (bool, error)
	// ServiceCheck reports whether the named service is active.
	ServiceCheck(name string) (service.State, error)
	// SystemReport captures a labeled snapshot of the host state.
	SystemReport(params SystemReportParams) (string, error)
	// RotateLogs compresses stale log files under a directory.
	RotateLogs(params RotateParams) (RotateResult, error)
	// GitDeploy updates a repository to the latest commit of a branch.
	GitDeploy(params DeployParams) (DeployResult, error)
	// CPUHogs lists processes whose CPU usage exceeds a threshold.
	CPUHogs(params CPUHogsParams) (ProcessReport, error)
	// SetLogger sets the logger for this Toolbox instance.
	SetLogger(logger logger.Logger)
}

// NewToolboxParams contains parameters for creating a new Toolbox instance.
type NewToolboxParams struct {
	Dependencies *dependencies.Dependencies
}

type realToolbox struct {
	deps *dependencies.Dependencies
}

// NewToolbox creates a new Toolbox instance.
func NewToolbox(params NewToolboxParams) (Toolbox, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	return &realToolbox{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this Toolbox instance.
func (t *realToolbox) SetLogger(logger logger.Logger) {
	t.deps.Logger = logger
}

// logf appends a formatted line to the run log.
func (t *realToolbox) logf(msg string, args ...interface{}) {
	if t.deps.Logger != nil {
		t.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// errorf appends a formatted failure line to the run log.
func (t *realToolbox) errorf(msg string, args ...interface{}) {
	if t.deps.Logger != nil {
		t.deps.Logger.Errorf(fmt.Sprintf(msg, args...))
	}
}

// requireTool verifies that an external tool is resolvable on the execution
// path. Operations call it before any mutating action.
func (t *realToolbox) requireTool(name string) error {
	if _, err := t.deps.FS.Which(name); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingDependency, name)
	}
	return nil
}

// writeReport writes report text to a file, expanding a leading tilde first.
func (t *realToolbox) writeReport(path, content string) error {
	expanded, err := t.deps.FS.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("failed to expand output path: %w", err)
	}

	if err := t.deps.FS.WriteFileAtomic(expanded, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
