package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsClean reports whether the work tree has no uncommitted or untracked changes.
func (g *realGit) IsClean(repoPath string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("git status failed: %w (command: git status --porcelain, output: %s)",
			err, string(output))
	}

	// Porcelain output is empty for a clean work tree
	return strings.TrimSpace(string(output)) == "", nil
}
