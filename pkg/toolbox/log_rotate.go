package toolbox

import (
	"fmt"
	"path/filepath"
	"time"
)

// RotateParams contains parameters for RotateLogs.
type RotateParams struct {
	// Dir is the directory scanned for log files. Defaults to /var/log.
	Dir string
	// MaxAgeDays is the age threshold in days. Defaults to 7.
	MaxAgeDays int
}

// RotateFailure records one file that could not be compressed.
type RotateFailure struct {
	Path   string
	Reason string
}

// RotateResult summarizes one rotation batch.
type RotateResult struct {
	// Compressed lists the files that were gzipped.
	Compressed []string
	// Skipped counts files newer than the threshold.
	Skipped int
	// Failures lists the files the batch could not compress.
	Failures []RotateFailure
}

const (
	defaultRotateDir     = "/var/log"
	defaultRotateMaxDays = 7
)

// RotateLogs compresses every *.log file strictly older than the age
// threshold in place. Already-compressed files are never touched, and one
// file failing never aborts the rest of the batch.
func (t *realToolbox) RotateLogs(params RotateParams) (RotateResult, error) {
	if err := t.requireTool("gzip"); err != nil {
		return RotateResult{}, err
	}

	dir := params.Dir
	if dir == "" {
		dir = defaultRotateDir
	}
	maxAgeDays := params.MaxAgeDays
	if maxAgeDays <= 0 {
		maxAgeDays = defaultRotateMaxDays
	}

	dir, err := t.deps.FS.ExpandPath(dir)
	if err != nil {
		return RotateResult{}, fmt.Errorf("failed to expand directory path: %w", err)
	}

	isDir, err := t.deps.FS.IsDir(dir)
	if err != nil {
		if t.deps.FS.IsNotExist(err) {
			t.errorf("log-rotate: directory %s does not exist", dir)
			return RotateResult{}, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return RotateResult{}, fmt.Errorf("failed to check directory: %w", err)
	}
	if !isDir {
		t.errorf("log-rotate: %s is not a directory", dir)
		return RotateResult{}, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	t.logf("log-rotate: scanning %s for *.log older than %d days", dir, maxAgeDays)

	matches, err := t.deps.FS.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return RotateResult{}, fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)

	var result RotateResult
	for _, path := range matches {
		info, err := t.deps.FS.Stat(path)
		if err != nil {
			t.errorf("log-rotate: cannot stat %s: %v", path, err)
			result.Failures = append(result.Failures, RotateFailure{Path: path, Reason: err.Error()})
			continue
		}
		if !info.ModTime().Before(cutoff) {
			result.Skipped++
			continue
		}

		if err := t.deps.Compressor.Compress(path); err != nil {
			t.errorf("log-rotate: failed to compress %s: %v", path, err)
			result.Failures = append(result.Failures, RotateFailure{Path: path, Reason: err.Error()})
			continue
		}

		t.logf("log-rotate: compressed %s", path)
		result.Compressed = append(result.Compressed, path)
	}

	t.logf("log-rotate: compressed %d, skipped %d, failed %d",
		len(result.Compressed), result.Skipped, len(result.Failures))
	return result, nil
}
