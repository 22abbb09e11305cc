// Package compress provides the gzip-based compressor behind the log-rotate command.
package compress

//go:generate go run go.uber.org/mock/mockgen@latest -source=compress.go -destination=mocks/compress.gen.go -package=mocks

// Compressor interface provides file compression capabilities.
type Compressor interface {
	// Compress gzips the file at path in place, replacing it with path.gz.
	Compress(path string) error
}

type realCompressor struct {
	// No fields needed for basic compression operations
}

// NewCompressor creates a new Compressor instance.
func NewCompressor() Compressor {
	return &realCompressor{}
}
