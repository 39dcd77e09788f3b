package exclusion

import (
	"regexp"
	"strings"
)

// DefaultBlacklist holds the expressions metro-config always excludes.
var DefaultBlacklist = []string{
	`node_modules[\/\\]react[\/\\]dist[\/\\].*`,
	`website\/node_modules\/.*`,
	`heapCapture\/bundle\.js`,
	`.*\/__tests__\/.*`,
}

// BlacklistSource combines groups with DefaultBlacklist into the expression
// Metro expects for resolver.blacklistRE: every alternative anchored at the
// end of the path. Nil groups are skipped.
func BlacklistSource(groups ...*Pattern) string {
	alternatives := make([]string, 0, len(groups)+len(DefaultBlacklist))
	for _, g := range groups {
		if g != nil {
			alternatives = append(alternatives, g.String())
		}
	}
	alternatives = append(alternatives, DefaultBlacklist...)
	return "(" + strings.Join(alternatives, "|") + ")$"
}

// Blacklist compiles BlacklistSource
func Blacklist(groups ...*Pattern) *regexp.Regexp {
	return regexp.MustCompile(BlacklistSource(groups...))
}
