// Package git provides Git operations for the opskit deploy command.
package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// IsClean reports whether the work tree has no uncommitted or untracked changes.
	IsClean(repoPath string) (bool, error)

	// CurrentBranch gets the current branch name.
	CurrentBranch(repoPath string) (string, error)

	// Fetch fetches from a specific remote.
	Fetch(repoPath, remoteName string) error

	// Checkout checks out an existing branch.
	Checkout(repoPath, branch string) error

	// Pull pulls a branch from a specific remote.
	Pull(repoPath, remoteName, branch string) error

	// HeadSummary returns a one-line summary of the current HEAD commit.
	HeadSummary(repoPath string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
