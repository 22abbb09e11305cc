package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// HeadSummary returns a one-line summary of the current HEAD commit.
func (g *realGit) HeadSummary(repoPath string) (string, error) {
	cmd := exec.Command("git", "log", "-1", "--oneline")
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git log failed: %w (command: git log -1 --oneline, output: %s)",
			err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
