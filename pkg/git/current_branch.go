package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CurrentBranch gets the current branch name.
func (g *realGit) CurrentBranch(repoPath string) (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git branch failed: %w (command: git branch --show-current, output: %s)",
			err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
