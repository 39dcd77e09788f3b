package discovery

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/filesystem"
	"github.com/carimus/metrolink/pkg/logging"
	"github.com/carimus/metrolink/pkg/types"
)

// ManifestFile is the package manifest name
const ManifestFile = "package.json"

// manifest holds the dependency sections of a package.json, each as the
// declared package names in file order.
type manifest struct {
	Dependencies         []string
	DevDependencies      []string
	OptionalDependencies []string
}

// dependencyNames lists the packages a directory depends on. devDependencies
// only count for the project itself: a linked package's dev tooling is not
// part of what the bundler loads.
func (m *manifest) dependencyNames(isRoot bool) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(list []string) {
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}

	add(m.Dependencies)
	if isRoot {
		add(m.DevDependencies)
	}
	add(m.OptionalDependencies)
	return names
}

// readManifest loads dir/package.json. A missing manifest is not an error and
// yields an empty manifest.
func readManifest(fsys types.FS, dir string) (*manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &manifest{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot read package manifest").
			WithDetail("path", path)
	}

	m, err := parseManifest(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid package manifest").
			WithDetail("path", path)
	}
	return m, nil
}

func parseManifest(data []byte) (*manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	m := &manifest{}
	sections := []struct {
		key  string
		dest *[]string
	}{
		{"dependencies", &m.Dependencies},
		{"devDependencies", &m.DevDependencies},
		{"optionalDependencies", &m.OptionalDependencies},
	}
	for _, s := range sections {
		section, ok := raw[s.key]
		if !ok {
			continue
		}
		keys, err := objectKeys(section)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.key, err)
		}
		*s.dest = keys
	}
	return m, nil
}

// objectKeys returns the keys of a JSON object in document order, which
// encoding/json maps would lose. null is treated as an empty object.
func objectKeys(data json.RawMessage) ([]string, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected an object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		// Skip the value, whatever its shape.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// ManifestDiscoverer follows package.json dependency declarations from the
// project root, reporting every dependency that is installed as a symlink
// and descending into the linked package's real location.
type ManifestDiscoverer struct {
	fs     types.FS
	ignore ignoreSet
}

// Discover implements Discoverer
func (d *ManifestDiscoverer) Discover(root string) ([]string, error) {
	logger := logging.GetLogger("discovery.manifest")

	realRoot, err := filesystem.RealPath(d.fs, root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot resolve project root").
			WithDetail("root", root)
	}

	var links []string
	visited := map[string]bool{}
	if err := d.walk(realRoot, true, visited, &links); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", realRoot).Int("links", len(links)).Msg("Manifest discovery finished")
	return links, nil
}

func (d *ManifestDiscoverer) walk(dir string, isRoot bool, visited map[string]bool, links *[]string) error {
	logger := logging.GetLogger("discovery.manifest")

	if visited[dir] {
		return nil
	}
	visited[dir] = true

	m, err := readManifest(d.fs, dir)
	if err != nil {
		return err
	}

	for _, name := range m.dependencyNames(isRoot) {
		if err := validPackageName(name); err != nil {
			logger.Debug().Str("dir", dir).Err(err).Msg("Skipping dependency")
			continue
		}
		if d.ignore.matches(name) {
			logger.Trace().Str("package", name).Msg("Ignored by pattern")
			continue
		}

		depPath, found := d.locate(dir, name)
		if !found {
			logger.Trace().Str("dir", dir).Str("package", name).Msg("Dependency not installed")
			continue
		}

		linked, err := isSymlink(d.fs, depPath)
		if err != nil || !linked {
			continue
		}
		*links = append(*links, depPath)

		target, err := filesystem.RealPath(d.fs, depPath)
		if err != nil {
			// Left for the caller's resolution step to report.
			logger.Debug().Str("link", depPath).Err(err).Msg("Cannot follow link")
			continue
		}
		if err := d.walk(target, false, visited, links); err != nil {
			return err
		}
	}
	return nil
}

// locate finds where name is installed for a package living in dir, walking
// up through parent node_modules directories like Node's resolver does.
func (d *ManifestDiscoverer) locate(dir, name string) (string, bool) {
	for {
		if filepath.Base(dir) != NodeModulesDir {
			candidate := packagePath(filepath.Join(dir, NodeModulesDir), name)
			if _, err := d.fs.Lstat(candidate); err == nil {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
