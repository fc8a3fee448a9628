// Package storage is the filesystem abstraction seed files and photo pools
// are read from and written to.
//
// Two drivers are available:
//   - "local"  local filesystem rooted at STORAGE_LOCAL_ROOT (default)
//   - "s3"     S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	if err := storage.Connect(); err != nil { ... }
//	data, err := storage.Default().Get("seed-data.json")
//
//	// named disk
//	storage.Use("s3").Put("seeds/seed-data.json", data)
package storage

import (
	"errors"
	"io/fs"
)

// ErrNotExist is matched by errors.Is when a read targets a missing path on any disk.
var ErrNotExist = fs.ErrNotExist

// Disk is the filesystem driver interface. Every driver must implement this.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Copy creates a copy of src at dst.
	Copy(src, dst string) error

	// Files lists the files directly inside directory, as disk paths.
	Files(directory string) ([]string, error)

	// URL returns the public URL for path.
	URL(path string) string
}

// IsNotExist reports whether err means the path was missing.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
