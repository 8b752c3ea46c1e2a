// Package util provides small filesystem helpers for recipelang.
package util

import "os"

// AtomicWriteFile writes data to a file via a temp-file-then-rename so
// a crash mid-write never leaves a truncated file behind. The rename is
// atomic on POSIX systems.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile := path + ".tmp"

	if err := os.WriteFile(tmpFile, data, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return nil
}
