package toolbox

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DiskUsageParams contains parameters for DiskUsageReport.
type DiskUsageParams struct {
	// Dir is the directory to inspect. Defaults to the current directory.
	Dir string
	// Top caps the number of entries returned. Defaults to 10.
	Top int
}

// DirUsage is the measured size of one entry under the inspected directory.
type DirUsage struct {
	Path   string
	SizeKB int64
}

const defaultDiskUsageTop = 10

// DiskUsageReport lists the immediate children of a directory sorted by size
// descending, truncated to the top entries.
func (t *realToolbox) DiskUsageReport(params DiskUsageParams) ([]DirUsage, error) {
	if err := t.requireTool("du"); err != nil {
		return nil, err
	}

	dir := params.Dir
	if dir == "" {
		dir = "."
	}
	top := params.Top
	if top <= 0 {
		top = defaultDiskUsageTop
	}

	dir, err := t.deps.FS.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand directory path: %w", err)
	}

	isDir, err := t.deps.FS.IsDir(dir)
	if err != nil {
		if t.deps.FS.IsNotExist(err) {
			t.errorf("du-report: directory %s does not exist", dir)
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to check directory: %w", err)
	}
	if !isDir {
		t.errorf("du-report: %s is not a directory", dir)
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	t.logf("du-report: measuring %s (top %d)", dir, top)

	raw, err := t.deps.Inspector.DiskUsage(dir)
	if err != nil {
		t.errorf("du-report: %v", err)
		return nil, fmt.Errorf("failed to measure disk usage: %w", err)
	}

	entries := parseDiskUsage(raw, dir)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SizeKB > entries[j].SizeKB
	})
	if len(entries) > top {
		entries = entries[:top]
	}

	t.logf("du-report: %d entries under %s", len(entries), dir)
	return entries, nil
}

// parseDiskUsage parses "<size-kb>\t<path>" lines, dropping the totals row
// the usage tool emits for the inspected directory itself.
func parseDiskUsage(raw, dir string) []DirUsage {
	var entries []DirUsage

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}

		size, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}

		path := fields[1]
		if filepath.Clean(path) == filepath.Clean(dir) {
			continue
		}

		entries = append(entries, DirUsage{Path: path, SizeKB: size})
	}

	return entries
}
