package exclusion

// Matcher decides whether a path is excluded using literal prefixes. A path
// is excluded when it contains an excluded directory followed by either the
// end of the path or a "/".
type Matcher struct {
	dirs []string
}

// NewMatcher builds a Matcher from the same inputs as BuildGroup
func NewMatcher(devPaths, modules, dirs []string) *Matcher {
	m := &Matcher{}
	if len(devPaths) > 0 && len(modules) > 0 {
		for _, dev := range devPaths {
			for _, mod := range modules {
				m.dirs = append(m.dirs, dev+nodeModulesSegment+mod)
			}
		}
	}
	m.dirs = append(m.dirs, dirs...)
	return m
}

// Empty reports whether the matcher excludes nothing
func (m *Matcher) Empty() bool {
	return len(m.dirs) == 0
}

// Excluded reports whether path is one of the excluded directories or lies
// beneath one
func (m *Matcher) Excluded(path string) bool {
	for _, dir := range m.dirs {
		if containsDir(path, dir) {
			return true
		}
	}
	return false
}

// Dirs lists the excluded directories in precedence order
func (m *Matcher) Dirs() []string {
	return append([]string(nil), m.dirs...)
}

// containsDir reports whether dir occurs in path at a position where it is
// followed by the end of path or a separator.
func containsDir(path, dir string) bool {
	if dir == "" {
		// An empty alternative matches at the end of any path.
		return true
	}
	for offset := 0; offset+len(dir) <= len(path); offset++ {
		if path[offset:offset+len(dir)] != dir {
			continue
		}
		end := offset + len(dir)
		if end == len(path) || path[end] == '/' {
			return true
		}
	}
	return false
}
