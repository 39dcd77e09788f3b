package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/carimus/metrolink/pkg/types"
)

// maxLinkHops bounds symlink expansion, matching the usual kernel limit.
const maxLinkHops = 255

// ErrTooManyLinks is returned by RealPath when a path expands through more
// than maxLinkHops symlinks, which in practice means a link cycle.
var ErrTooManyLinks = errors.New("too many levels of symbolic links")

// RealPath returns the canonical absolute form of name with every symlink
// along it resolved, in the manner of realpath(3). Relative names are made
// absolute first. The path must exist; a dangling link yields the Lstat
// error of its missing target.
func RealPath(fsys types.FS, name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}

	sep := string(filepath.Separator)
	root := filepath.VolumeName(abs) + sep
	pending := strings.Split(strings.TrimPrefix(abs, filepath.VolumeName(abs)), sep)
	resolved := root
	hops := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, part)
		info, err := fsys.Lstat(next)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &fs.PathError{Op: "realpath", Path: name, Err: ErrTooManyLinks}
		}

		target, err := fsys.Readlink(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(target) {
			resolved = filepath.VolumeName(target) + sep
			target = strings.TrimPrefix(target, filepath.VolumeName(target))
		}
		pending = append(strings.Split(target, sep), pending...)
	}

	return resolved, nil
}
