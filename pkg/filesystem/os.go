package filesystem

import (
	"io/fs"
	"os"

	"github.com/carimus/metrolink/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS returns the OS filesystem without the afero layer. Library callers
// that already guard writes themselves can pass it to linked.NewLinker.
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}
