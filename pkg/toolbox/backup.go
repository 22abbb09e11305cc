package toolbox

import (
	"fmt"
	"path/filepath"
)

// BackupParams contains parameters for Backup.
type BackupParams struct {
	// Source is the file or directory to archive.
	Source string
	// Destination is the path of the archive to create.
	Destination string
}

// BackupResult describes a created archive.
type BackupResult struct {
	ArchivePath string
	SizeBytes   int64
}

// Backup creates a gzip-compressed tar archive of Source at Destination,
// creating destination directories as needed. The source is verified before
// anything is written.
func (t *realToolbox) Backup(params BackupParams) (BackupResult, error) {
	if err := t.requireTool("tar"); err != nil {
		return BackupResult{}, err
	}

	source, err := t.deps.FS.ExpandPath(params.Source)
	if err != nil {
		return BackupResult{}, fmt.Errorf("failed to expand source path: %w", err)
	}
	destination, err := t.deps.FS.ExpandPath(params.Destination)
	if err != nil {
		return BackupResult{}, fmt.Errorf("failed to expand destination path: %w", err)
	}

	t.logf("backup: archiving %s to %s", source, destination)

	exists, err := t.deps.FS.Exists(source)
	if err != nil {
		return BackupResult{}, fmt.Errorf("failed to check source path: %w", err)
	}
	if !exists {
		t.errorf("backup: source %s does not exist", source)
		return BackupResult{}, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	if err := t.deps.FS.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return BackupResult{}, fmt.Errorf("failed to create destination directories: %w", err)
	}

	if err := t.deps.Archiver.Create(destination, source); err != nil {
		// A failed run must not leave a partial archive behind
		if removeErr := t.deps.FS.Remove(destination); removeErr != nil && !t.deps.FS.IsNotExist(removeErr) {
			t.errorf("backup: failed to remove partial archive %s: %v", destination, removeErr)
		}
		t.errorf("backup: %v", err)
		return BackupResult{}, fmt.Errorf("failed to create archive: %w", err)
	}

	info, err := t.deps.FS.Stat(destination)
	if err != nil {
		return BackupResult{}, fmt.Errorf("failed to stat archive: %w", err)
	}

	t.logf("backup: created %s (%d bytes)", destination, info.Size())

	return BackupResult{
		ArchivePath: destination,
		SizeBytes:   info.Size(),
	}, nil
}
