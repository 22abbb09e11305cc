package toolbox

import (
	"fmt"
	"path/filepath"

	"opskit/pkg/service"
)

// DeployParams contains parameters for GitDeploy.
type DeployParams struct {
	// RepoPath is the repository to update.
	RepoPath string
	// Branch is the branch to deploy. Defaults to main.
	Branch string
	// Service names the service to restart when Restart is set.
	Service string
	// Restart restarts Service once the working tree is updated.
	Restart bool
}

// DeployResult describes the outcome of a deploy.
type DeployResult struct {
	// Branch is the branch that was deployed.
	Branch string
	// Head is a one-line summary of the deployed commit.
	Head string
	// HookRan reports whether the repository deploy hook was executed.
	HookRan bool
	// Restarted reports whether the service restart went through.
	Restarted bool
	// RestartWarning carries a non-fatal restart or verification failure.
	RestartWarning string
}

const (
	defaultDeployBranch = "main"
	deployHookName      = "deploy.sh"
	deployRemote        = "origin"
)

// GitDeploy brings a repository up to date with its remote branch, runs the
// repository's deploy hook when one is present and executable, and optionally
// restarts a service. A dirty working tree stops the deploy before any remote
// operation runs.
func (t *realToolbox) GitDeploy(params DeployParams) (DeployResult, error) {
	if err := t.requireTool("git"); err != nil {
		return DeployResult{}, err
	}

	branch := params.Branch
	if branch == "" {
		branch = defaultDeployBranch
	}

	repoPath, err := t.deps.FS.ExpandPath(params.RepoPath)
	if err != nil {
		return DeployResult{}, fmt.Errorf("failed to expand repository path: %w", err)
	}

	t.logf("git-deploy: deploying %s at %s", branch, repoPath)

	exists, err := t.deps.FS.Exists(filepath.Join(repoPath, ".git"))
	if err != nil {
		return DeployResult{}, fmt.Errorf("failed to check repository: %w", err)
	}
	if !exists {
		t.errorf("git-deploy: %s is not a git repository", repoPath)
		return DeployResult{}, fmt.Errorf("%w: %s", ErrNotARepository, repoPath)
	}

	clean, err := t.deps.Git.IsClean(repoPath)
	if err != nil {
		return DeployResult{}, fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		t.errorf("git-deploy: working tree at %s is dirty", repoPath)
		return DeployResult{}, fmt.Errorf("%w: %s", ErrDirtyWorkTree, repoPath)
	}

	if err := t.deps.Git.Fetch(repoPath, deployRemote); err != nil {
		t.errorf("git-deploy: %v", err)
		return DeployResult{}, err
	}

	current, err := t.deps.Git.CurrentBranch(repoPath)
	if err != nil {
		return DeployResult{}, fmt.Errorf("failed to resolve current branch: %w", err)
	}
	if current != branch {
		t.logf("git-deploy: switching to %s", branch)
		if err := t.deps.Git.Checkout(repoPath, branch); err != nil {
			t.errorf("git-deploy: %v", err)
			return DeployResult{}, err
		}
	}

	if err := t.deps.Git.Pull(repoPath, deployRemote, branch); err != nil {
		t.errorf("git-deploy: %v", err)
		return DeployResult{}, err
	}

	result := DeployResult{Branch: branch}

	if head, err := t.deps.Git.HeadSummary(repoPath); err == nil {
		result.Head = head
	}

	hookRan, err := t.runDeployHook(repoPath)
	if err != nil {
		return DeployResult{}, err
	}
	result.HookRan = hookRan

	if params.Restart && params.Service != "" {
		result.Restarted, result.RestartWarning = t.restartService(params.Service)
	}

	t.logf("git-deploy: %s deployed at %s", branch, repoPath)
	return result, nil
}

// runDeployHook executes the repository's deploy.sh when it is present and
// executable.
func (t *realToolbox) runDeployHook(repoPath string) (bool, error) {
	hookPath := filepath.Join(repoPath, deployHookName)

	info, err := t.deps.FS.Stat(hookPath)
	if err != nil {
		if t.deps.FS.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check deploy hook: %w", err)
	}
	if info.Mode()&0111 == 0 {
		t.logf("git-deploy: %s present but not executable, skipping", deployHookName)
		return false, nil
	}

	t.logf("git-deploy: running %s", deployHookName)

	if _, err := t.deps.FS.ExecuteCommand(repoPath, "./"+deployHookName); err != nil {
		t.errorf("git-deploy: %v", err)
		return false, fmt.Errorf("%w: %w", ErrDeployHookFailed, err)
	}

	return true, nil
}

// restartService restarts the service and verifies it came back active. Both
// failures are recorded as warnings: the deploy itself already succeeded.
func (t *realToolbox) restartService(name string) (bool, string) {
	t.logf("git-deploy: restarting service %s", name)

	if err := t.deps.Service.Restart(name); err != nil {
		t.errorf("git-deploy: failed to restart %s: %v", name, err)
		return false, fmt.Sprintf("restart failed: %v", err)
	}

	state, err := t.deps.Service.Status(name)
	if err != nil {
		t.errorf("git-deploy: failed to verify %s after restart: %v", name, err)
		return true, fmt.Sprintf("verification failed: %v", err)
	}
	if state != service.StateActive {
		t.errorf("git-deploy: %s is %s after restart", name, state)
		return true, fmt.Sprintf("service %s is %s after restart", name, state)
	}

	t.logf("git-deploy: service %s active", name)
	return true, ""
}
