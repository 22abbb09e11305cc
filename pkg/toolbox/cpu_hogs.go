package toolbox

import (
	"fmt"
	"strconv"
	"strings"
)

// CPUHogsParams contains parameters for CPUHogs.
type CPUHogsParams struct {
	// Threshold is the minimum CPU percentage. Defaults to 30.
	Threshold float64
}

// ProcessReport is a filtered process listing.
type ProcessReport struct {
	// Header is the column header row from the process lister.
	Header string
	// Rows are the matching process lines, busiest first.
	Rows []string
}

const (
	defaultCPUThreshold = 30.0
	maxProcessRows      = 50
	cpuColumn           = 2
)

// CPUHogs lists processes whose CPU usage exceeds the threshold, busiest
// first, truncated to the top rows.
func (t *realToolbox) CPUHogs(params CPUHogsParams) (ProcessReport, error) {
	if err := t.requireTool("ps"); err != nil {
		return ProcessReport{}, err
	}

	threshold := params.Threshold
	if threshold <= 0 {
		threshold = defaultCPUThreshold
	}

	t.logf("cpu-hog: listing processes above %.1f%% CPU", threshold)

	raw, err := t.deps.Inspector.Processes()
	if err != nil {
		t.errorf("cpu-hog: %v", err)
		return ProcessReport{}, fmt.Errorf("failed to list processes: %w", err)
	}

	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return ProcessReport{}, nil
	}

	report := ProcessReport{Header: lines[0]}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) <= cpuColumn {
			continue
		}

		cpu, err := strconv.ParseFloat(fields[cpuColumn], 64)
		if err != nil {
			continue
		}
		if cpu > threshold {
			report.Rows = append(report.Rows, line)
		}
		if len(report.Rows) == maxProcessRows {
			break
		}
	}

	t.logf("cpu-hog: %d processes above %.1f%%", len(report.Rows), threshold)
	return report, nil
}
