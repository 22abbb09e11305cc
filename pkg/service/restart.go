package service

import (
	"fmt"
	"os/exec"
)

// Restart restarts the named service.
func (m *realManager) Restart(name string) error {
	if _, err := m.fs.Which("systemctl"); err == nil {
		cmd := exec.Command("systemctl", "restart", name)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("systemctl restart failed: %w (command: systemctl restart %s, output: %s)",
				err, name, string(output))
		}
		return nil
	}

	if _, err := m.fs.Which("service"); err == nil {
		cmd := exec.Command("service", name, "restart")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("service restart failed: %w (command: service %s restart, output: %s)",
				err, name, string(output))
		}
		return nil
	}

	return ErrManagerUnavailable
}
