package fs

import "os"

// Remove removes the named file or empty directory.
func (f *realFS) Remove(name string) error {
	return os.Remove(name)
}
