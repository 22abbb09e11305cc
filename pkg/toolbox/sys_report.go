package toolbox

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// SystemReportParams contains parameters for SystemReport.
type SystemReportParams struct {
	// OutputPath, when set, receives the snapshot instead of the return value.
	OutputPath string
}

const processReportRows = 20

// SystemReport captures hostname, uptime, memory, disk and the busiest
// processes as one labeled snapshot. A single failing probe degrades to an
// unavailable line rather than failing the whole snapshot.
func (t *realToolbox) SystemReport(params SystemReportParams) (string, error) {
	if err := t.requireTool("ps"); err != nil {
		return "", err
	}

	t.logf("sys-report: capturing snapshot")

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unavailable"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "==== System report: %s ====\n", hostname)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	sections := []struct {
		title string
		fn    func() (string, error)
	}{
		{"Uptime", t.deps.Inspector.Uptime},
		{"Memory", t.deps.Inspector.Memory},
		{"Disk", t.deps.Inspector.DiskFree},
	}
	for _, section := range sections {
		fmt.Fprintf(&b, "\n-- %s --\n", section.title)
		b.WriteString(t.probe(section.title, section.fn))
	}

	fmt.Fprintf(&b, "\n-- Top %d processes by CPU --\n", processReportRows)
	processes, err := t.deps.Inspector.Processes()
	if err != nil {
		t.errorf("sys-report: processes unavailable: %v", err)
		b.WriteString("unavailable\n")
	} else {
		// Header row plus the busiest rows
		b.WriteString(headLines(processes, processReportRows+1))
	}

	report := b.String()

	if params.OutputPath != "" {
		if err := t.writeReport(params.OutputPath, report); err != nil {
			t.errorf("sys-report: %v", err)
			return "", err
		}
		t.logf("sys-report: wrote snapshot to %s", params.OutputPath)
		return "", nil
	}

	t.logf("sys-report: snapshot captured")
	return report, nil
}

// probe runs one inspection, degrading to a placeholder line when the probe
// fails so the rest of the snapshot still gets captured.
func (t *realToolbox) probe(section string, fn func() (string, error)) string {
	text, err := fn()
	if err != nil {
		t.errorf("sys-report: %s unavailable: %v", strings.ToLower(section), err)
		return "unavailable\n"
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// headLines returns the first n lines of text.
func headLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n") + "\n"
}
