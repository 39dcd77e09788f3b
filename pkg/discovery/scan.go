package discovery

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/filesystem"
	"github.com/carimus/metrolink/pkg/logging"
	"github.com/carimus/metrolink/pkg/types"
)

// ScanDiscoverer lists node_modules directly and reports the entries that
// are symlinks, regardless of what package.json declares. It suits
// workspaces whose links are not declared as dependencies.
type ScanDiscoverer struct {
	fs        types.FS
	ignore    ignoreSet
	recursive bool
}

// Discover implements Discoverer
func (d *ScanDiscoverer) Discover(root string) ([]string, error) {
	realRoot, err := filesystem.RealPath(d.fs, root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot resolve project root").
			WithDetail("root", root)
	}

	var links []string
	visited := map[string]bool{}
	if err := d.scan(realRoot, visited, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (d *ScanDiscoverer) scan(dir string, visited map[string]bool, links *[]string) error {
	logger := logging.GetLogger("discovery.scan")

	if visited[dir] {
		return nil
	}
	visited[dir] = true

	nodeModules := filepath.Join(dir, NodeModulesDir)
	names, err := d.packageNames(nodeModules)
	if err != nil {
		return err
	}

	for _, name := range names {
		if d.ignore.matches(name) {
			logger.Trace().Str("package", name).Msg("Ignored by pattern")
			continue
		}

		path := packagePath(nodeModules, name)
		linked, err := isSymlink(d.fs, path)
		if err != nil || !linked {
			continue
		}
		*links = append(*links, path)

		if !d.recursive {
			continue
		}
		target, err := filesystem.RealPath(d.fs, path)
		if err != nil {
			logger.Debug().Str("link", path).Err(err).Msg("Cannot follow link")
			continue
		}
		if err := d.scan(target, visited, links); err != nil {
			return err
		}
	}
	return nil
}

// packageNames lists installed package names in a node_modules directory,
// expanding @scope directories. Dot entries (.bin, .cache) are skipped.
func (d *ScanDiscoverer) packageNames(nodeModules string) ([]string, error) {
	entries, err := d.fs.ReadDir(nodeModules)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot list node_modules").
			WithDetail("path", nodeModules)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, "@") {
			names = append(names, name)
			continue
		}

		scoped, err := d.fs.ReadDir(filepath.Join(nodeModules, name))
		if err != nil {
			continue
		}
		for _, s := range scoped {
			if !strings.HasPrefix(s.Name(), ".") {
				names = append(names, name+"/"+s.Name())
			}
		}
	}
	return names, nil
}
