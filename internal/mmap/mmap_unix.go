//go:build !windows

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mappings are read-only and private: snapshot files are immutable once
// written, and nothing here ever writes through the mapping.
func osMap(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
}

func osUnmap(data []byte) error {
	return unix.Munmap(data)
}
