package fs

import (
	"fmt"
	"os/exec"
)

// ExecuteCommand runs a command in the given directory and waits for it,
// returning its combined output.
func (f *realFS) ExecuteCommand(dir, command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%s failed: %w (output: %s)", command, err, string(output))
	}

	return string(output), nil
}
