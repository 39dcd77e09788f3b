package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

// Manifest is the subset of package.json that link discovery reads
type Manifest struct {
	Name                 string
	Dependencies         []string
	DevDependencies      []string
	OptionalDependencies []string
}

func (m Manifest) toJSON() map[string]interface{} {
	doc := map[string]interface{}{"name": m.Name, "version": "1.0.0"}
	add := func(key string, names []string) {
		if len(names) == 0 {
			return
		}
		deps := make(map[string]string, len(names))
		for _, n := range names {
			deps[n] = "*"
		}
		doc[key] = deps
	}
	add("dependencies", m.Dependencies)
	add("devDependencies", m.DevDependencies)
	add("optionalDependencies", m.OptionalDependencies)
	return doc
}

// WritePackage writes dir/package.json describing manifest
func WritePackage(t *testing.T, fsys *MemoryFS, dir string, manifest Manifest) {
	t.Helper()

	data, err := json.MarshalIndent(manifest.toJSON(), "", "  ")
	if err != nil {
		t.Fatalf("marshal manifest for %s: %v", dir, err)
	}
	if err := fsys.WriteFile(filepath.Join(dir, "package.json"), data, 0644); err != nil {
		t.Fatalf("write manifest for %s: %v", dir, err)
	}
}

// InstallPackage creates a regular (copied) package at dir/node_modules/name
// and returns its path.
func InstallPackage(t *testing.T, fsys *MemoryFS, dir, name string) string {
	t.Helper()

	pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
	WritePackage(t, fsys, pkgDir, Manifest{Name: name})
	return pkgDir
}

// LinkPackage makes dir/node_modules/name a symlink to target, the way
// `yarn link` does, and returns the link path.
func LinkPackage(t *testing.T, fsys *MemoryFS, dir, name, target string) string {
	t.Helper()

	link := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
	if err := fsys.Symlink(target, link); err != nil {
		t.Fatalf("link %s -> %s: %v", link, target, err)
	}
	return link
}
