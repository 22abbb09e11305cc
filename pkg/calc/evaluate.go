package calc

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Evaluate computes an expression through bc in arbitrary-precision mode.
func (e *realEvaluator) Evaluate(expression string) (string, error) {
	cmd := exec.Command("bc", "-l")
	cmd.Stdin = strings.NewReader(expression + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("bc failed: %w (stderr: %s)",
			err, strings.TrimSpace(stderr.String()))
	}

	// bc reports runtime errors such as division by zero on stderr while
	// still exiting zero
	if stderr.Len() > 0 {
		return "", fmt.Errorf("%w: %s", ErrEvaluation, strings.TrimSpace(stderr.String()))
	}

	// Long results wrap with a backslash continuation, which is unwanted here
	result := strings.TrimSpace(strings.ReplaceAll(stdout.String(), "\\\n", ""))
	if result == "" {
		return "", fmt.Errorf("%w: no result for expression %q", ErrEvaluation, expression)
	}

	return result, nil
}
