package exclusion

import (
	"regexp"
	"strings"
)

const nodeModulesSegment = "/node_modules/"

// Pattern is an exclusion group built from literal inputs. A nil *Pattern
// means nothing is excluded.
type Pattern struct {
	devPaths []string
	modules  []string
	dirs     []string

	source   string
	re       *regexp.Regexp
	anchored *regexp.Regexp
}

// BuildGroup returns the group matching each blacklisted module inside each
// dev path's node_modules, and each extra directory, together with all of
// their contents. The module clause needs both devPaths and modules; the
// result is nil when neither clause has anything to match.
func BuildGroup(devPaths, modules, dirs []string) *Pattern {
	var alternatives []string

	hasModuleClause := len(devPaths) > 0 && len(modules) > 0
	if hasModuleClause {
		alternatives = append(alternatives,
			"("+quoteJoin(devPaths)+")"+nodeModulesSegment+"("+quoteJoin(modules)+")")
	}
	for _, dir := range dirs {
		alternatives = append(alternatives, regexp.QuoteMeta(dir))
	}
	if len(alternatives) == 0 {
		return nil
	}

	source := "((" + strings.Join(alternatives, "|") + ")(/.*|))"
	p := &Pattern{
		dirs:     append([]string(nil), dirs...),
		source:   source,
		re:       regexp.MustCompile(source),
		anchored: regexp.MustCompile("(?:" + source + ")$"),
	}
	if hasModuleClause {
		p.devPaths = append([]string(nil), devPaths...)
		p.modules = append([]string(nil), modules...)
	}
	return p
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}

// String returns the regular expression source of the group
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

// Regexp returns the compiled, unanchored group
func (p *Pattern) Regexp() *regexp.Regexp {
	if p == nil {
		return nil
	}
	return p.re
}

// Match reports whether path is excluded by the group once anchored at the
// end of the path, which is how Blacklist applies it.
func (p *Pattern) Match(path string) bool {
	if p == nil {
		return false
	}
	return p.anchored.MatchString(path)
}

// Matcher returns the regexp-free predicate equivalent to Match
func (p *Pattern) Matcher() *Matcher {
	if p == nil {
		return NewMatcher(nil, nil, nil)
	}
	return NewMatcher(p.devPaths, p.modules, p.dirs)
}
