package compress

import (
	"fmt"
	"os/exec"
)

// Compress gzips the file at path in place, replacing it with path.gz.
func (c *realCompressor) Compress(path string) error {
	cmd := exec.Command("gzip", "-f", path)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gzip failed: %w (command: gzip -f %s, output: %s)",
			err, path, string(output))
	}

	return nil
}
