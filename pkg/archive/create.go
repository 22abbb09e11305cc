package archive

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Create produces a gzip-compressed tar archive of sourcePath at destPath.
func (a *realArchiver) Create(destPath, sourcePath string) error {
	// Archive the source relative to its parent directory
	parent := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)

	cmd := exec.Command("tar", "-czf", destPath, "-C", parent, base)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tar failed: %w (command: tar -czf %s -C %s %s, output: %s)",
			err, destPath, parent, base, string(output))
	}

	return nil
}
