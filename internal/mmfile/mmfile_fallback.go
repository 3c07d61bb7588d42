//go:build !unix

// Package mmfile provides platform-specific helpers for memory-mapping
// arena backing files.
package mmfile

import "os"

// Map reads the entire file when mmap is not available. Mutations made
// through the returned slice are not written back to the file.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// Sync is a no-op without a real mapping.
func Sync(_ []byte) error { return nil }
