package fs

import "os"

// IsNotExist checks if an error indicates file doesn't exist.
func (f *realFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
