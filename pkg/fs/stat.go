package fs

import "os"

// Stat returns file information for the given path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
