package types

import (
	"io/fs"
)

// FS is the read-only filesystem view metrolink needs to discover and
// resolve linked dependencies. Nothing in the pipeline writes to disk.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink inspection. Lstat must not follow the final path element.
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}
