package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const maxMemoryLinkHops = 64

// MemoryFS implements types.FS with in-memory storage and real symlink
// semantics: links are followed in intermediate path components, and Lstat
// and Readlink see the link itself.
type MemoryFS struct {
	mu   sync.RWMutex
	root *fileNode

	// Error injection
	errorPaths map[string]error
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	linkDest string
	children map[string]*fileNode
}

func (n *fileNode) isDir() bool  { return n.mode.IsDir() }
func (n *fileNode) isLink() bool { return n.mode&os.ModeSymlink != 0 }

// NewMemoryFS creates a new in-memory filesystem containing only "/"
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		root:       newDirNode("/", 0755),
		errorPaths: make(map[string]error),
	}
}

func newDirNode(name string, perm os.FileMode) *fileNode {
	return &fileNode{
		name:     name,
		mode:     perm | os.ModeDir,
		modTime:  time.Now(),
		children: make(map[string]*fileNode),
	}
}

func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// lookup walks path from the root. Symlinks in intermediate components are
// always followed; the final component is followed only when followLast is set.
func (m *MemoryFS) lookup(op, path string, followLast bool) (*fileNode, string, error) {
	path = normalizePath(path)
	if err, ok := m.errorPaths[path]; ok {
		return nil, "", err
	}

	pending := splitPath(path)
	node := m.root
	current := "/"
	hops := 0

	for len(pending) > 0 {
		part := pending[0]
		pending = pending[1:]

		if part == ".." {
			current = filepath.Dir(current)
			parent, _, err := m.lookup(op, current, true)
			if err != nil {
				return nil, "", err
			}
			node = parent
			continue
		}

		if !node.isDir() {
			return nil, "", &fs.PathError{Op: op, Path: path, Err: errors.New("not a directory")}
		}
		child, ok := node.children[part]
		if !ok {
			return nil, "", &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
		}

		if child.isLink() && (len(pending) > 0 || followLast) {
			hops++
			if hops > maxMemoryLinkHops {
				return nil, "", &fs.PathError{Op: op, Path: path, Err: errors.New("too many levels of symbolic links")}
			}
			target := child.linkDest
			if filepath.IsAbs(target) {
				node = m.root
				current = "/"
			}
			pending = append(splitPath(target), pending...)
			continue
		}

		node = child
		current = filepath.Join(current, part)
	}

	return node, current, nil
}

// parentDir resolves the directory that will hold path, following links
func (m *MemoryFS) parentDir(op, path string) (*fileNode, string, error) {
	path = normalizePath(path)
	dir, _, err := m.lookup(op, filepath.Dir(path), true)
	if err != nil {
		return nil, "", err
	}
	if !dir.isDir() {
		return nil, "", &fs.PathError{Op: op, Path: path, Err: errors.New("not a directory")}
	}
	return dir, filepath.Base(path), nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, _, err := m.lookup("read", name, true)
	if err != nil {
		return nil, err
	}
	if node.isDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating parent directories as needed
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.mkdirAll(filepath.Dir(normalizePath(name)), 0755); err != nil {
		return err
	}
	parent, filename, err := m.parentDir("write", name)
	if err != nil {
		return err
	}

	content := make([]byte, len(data))
	copy(content, data)
	parent.children[filename] = &fileNode{
		name:    filename,
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, _, err := m.lookup("stat", name, true)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(normalizePath(name))}, nil
}

// Lstat returns file info without following a symlink in the last element
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, _, err := m.lookup("lstat", name, false)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(normalizePath(name))}, nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = normalizePath(path)

	if node, _, err := m.lookup("mkdir", path, true); err == nil {
		if !node.isDir() {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("file exists")}
		}
		return nil
	}

	if parent := filepath.Dir(path); parent != path {
		if err := m.mkdirAll(parent, perm); err != nil {
			return err
		}
	}

	dir, name, err := m.parentDir("mkdir", path)
	if err != nil {
		return err
	}
	dir.children[name] = newDirNode(name, perm)
	return nil
}

// Symlink creates a symbolic link at link pointing to target. Parent
// directories of link are created as needed; target is not checked.
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.mkdirAll(filepath.Dir(normalizePath(link)), 0755); err != nil {
		return err
	}
	dir, name, err := m.parentDir("symlink", link)
	if err != nil {
		return err
	}
	if _, exists := dir.children[name]; exists {
		return &fs.PathError{Op: "symlink", Path: link, Err: fs.ErrExist}
	}

	dir.children[name] = &fileNode{
		name:     name,
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		linkDest: target,
	}
	return nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, _, err := m.lookup("readlink", name, false)
	if err != nil {
		return "", err
	}
	if !node.isLink() {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}
	return node.linkDest, nil
}

// ReadDir reads a directory and returns its entries sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, _, err := m.lookup("readdir", name, true)
	if err != nil {
		return nil, err
	}
	if !node.isDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, fs.FileInfoToDirEntry(&fileInfo{node: child, name: childName}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[normalizePath(path)] = err
	return m
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir() }
func (fi *fileInfo) Sys() interface{}   { return nil }
