package linked

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/filesystem"
)

// InferProjectRoot assumes the bundler runs from the project root and
// returns the working directory.
func InferProjectRoot() string {
	return inferRoot(os.Getwd)
}

func inferRoot(getwd func() (string, error)) string {
	if wd, err := getwd(); err == nil && wd != "" {
		return wd
	}
	abs, err := filepath.Abs(".")
	if err != nil {
		return "."
	}
	return abs
}

// ResolveDevPaths discovers the linked dependencies of root and returns
// their real paths: symlink-free, without trailing separators, unique and
// in discovery order. Any link that cannot be resolved fails the call.
func (l *Linker) ResolveDevPaths(root string) ([]string, error) {
	logger := l.logger()

	links, err := l.discoverer().Discover(root)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("root", root).Int("links", len(links)).Msg("discovered linked dependencies")

	seen := make(map[string]bool, len(links))
	resolved := make([]string, 0, len(links))
	for _, link := range links {
		target, err := filesystem.RealPath(l.fs(), link)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPathResolve, "cannot resolve linked dependency %s", link).
				WithDetail("path", link).
				WithDetail("root", root)
		}

		target = trimTrailingSeparators(target)
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		resolved = append(resolved, target)
		logger.Trace().Str("link", link).Str("target", target).Msg("resolved linked dependency")
	}
	return resolved, nil
}

// ResolvePaths makes each entry of paths absolute against root, following
// symlinks when followSymlinks is set. Entries that must be followed have
// to exist.
func (l *Linker) ResolvePaths(root string, paths []string, followSymlinks bool) ([]string, error) {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, p)
		}
		abs = filepath.Clean(abs)

		if followSymlinks {
			target, err := filesystem.RealPath(l.fs(), abs)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrPathResolve, "cannot resolve %s", p).
					WithDetail("path", abs).
					WithDetail("root", root)
			}
			abs = target
		}
		resolved = append(resolved, abs)
	}
	return resolved, nil
}

func trimTrailingSeparators(p string) string {
	return strings.TrimRight(p, "/"+string(filepath.Separator))
}
