package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/types"
	"github.com/gobwas/glob"
)

// Strategy names accepted by New
const (
	StrategyManifest = "manifest"
	StrategyScan     = "scan"
)

// NodeModulesDir is the directory package managers install into
const NodeModulesDir = "node_modules"

// Discoverer returns the symlinked dependency directories reachable from a
// project root, in discovery order. Paths are returned unresolved.
type Discoverer interface {
	Discover(root string) ([]string, error)
}

// Options configures a Discoverer
type Options struct {
	// Strategy is StrategyManifest (default) or StrategyScan.
	Strategy string
	// Ignore holds glob patterns of package names that are never reported
	// or descended into, e.g. "@types/*".
	Ignore []string
	// Recursive makes the scan strategy descend into linked packages'
	// own node_modules. The manifest strategy always recurses.
	Recursive bool
}

// New builds the Discoverer selected by opts.Strategy
func New(fsys types.FS, opts Options) (Discoverer, error) {
	ignore, err := compileIgnore(opts.Ignore)
	if err != nil {
		return nil, err
	}

	switch opts.Strategy {
	case "", StrategyManifest:
		return &ManifestDiscoverer{fs: fsys, ignore: ignore}, nil
	case StrategyScan:
		return &ScanDiscoverer{fs: fsys, ignore: ignore, recursive: opts.Recursive}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown discovery strategy %q", opts.Strategy).
			WithDetail("strategy", opts.Strategy)
	}
}

// ignoreSet matches package names against compiled glob patterns
type ignoreSet []glob.Glob

func compileIgnore(patterns []string) (ignoreSet, error) {
	set := make(ignoreSet, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid ignore pattern %q", p)
		}
		set = append(set, g)
	}
	return set, nil
}

func (s ignoreSet) matches(name string) bool {
	for _, g := range s {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// packagePath joins a node_modules directory and a (possibly scoped) package name
func packagePath(nodeModules, name string) string {
	return filepath.Join(nodeModules, filepath.FromSlash(name))
}

func isSymlink(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

func validPackageName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") || strings.Contains(name, "..") || filepath.IsAbs(name) {
		return fmt.Errorf("invalid package name %q", name)
	}
	return nil
}
