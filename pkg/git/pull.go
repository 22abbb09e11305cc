package git

import (
	"fmt"
	"os/exec"
)

// Pull pulls a branch from a specific remote.
func (g *realGit) Pull(repoPath, remoteName, branch string) error {
	cmd := exec.Command("git", "pull", remoteName, branch)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git pull failed: %w (command: git pull %s %s, output: %s)",
			err, remoteName, branch, string(output))
	}

	return nil
}
