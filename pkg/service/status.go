package service

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Status reports whether the named service is active.
func (m *realManager) Status(name string) (State, error) {
	if _, err := m.fs.Which("systemctl"); err == nil {
		return m.systemctlStatus(name)
	}

	if _, err := m.fs.Which("service"); err == nil {
		return m.serviceStatus(name)
	}

	return "", ErrManagerUnavailable
}

// systemctlStatus checks a unit through systemctl. Exit code 4 means the unit
// does not exist; any other non-zero exit means it is not running.
func (m *realManager) systemctlStatus(name string) (State, error) {
	cmd := exec.Command("systemctl", "status", name)

	output, err := cmd.CombinedOutput()
	if err == nil {
		return StateActive, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == 4 {
			return "", fmt.Errorf("%w: %s", ErrServiceNotFound, name)
		}
		return StateInactive, nil
	}

	return "", fmt.Errorf("systemctl status failed: %w (command: systemctl status %s, output: %s)",
		err, name, string(output))
}

// serviceStatus checks a service through the SysV service wrapper.
func (m *realManager) serviceStatus(name string) (State, error) {
	cmd := exec.Command("service", name, "status")

	output, err := cmd.CombinedOutput()
	if err == nil {
		return StateActive, nil
	}

	if strings.Contains(string(output), "unrecognized service") {
		return "", fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return StateInactive, nil
	}

	return "", fmt.Errorf("service status failed: %w (command: service %s status, output: %s)",
		err, name, string(output))
}
