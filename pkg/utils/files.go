package utils

import "os"

// MakeDir creates a directory with all parent directories
func MakeDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// DeleteDir removes a directory and all its contents
func DeleteDir(path string) error {
	return os.RemoveAll(path)
}
