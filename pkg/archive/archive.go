// Package archive provides the tar-based archive writer behind the backup command.
package archive

//go:generate go run go.uber.org/mock/mockgen@latest -source=archive.go -destination=mocks/archive.gen.go -package=mocks

// Archiver interface provides archive creation capabilities.
type Archiver interface {
	// Create produces a gzip-compressed tar archive of sourcePath at destPath.
	// The source is stored relative to its parent directory so the archive
	// never embeds absolute paths.
	Create(destPath, sourcePath string) error
}

type realArchiver struct {
	// No fields needed for basic archive operations
}

// NewArchiver creates a new Archiver instance.
func NewArchiver() Archiver {
	return &realArchiver{}
}
