package linked

import (
	"github.com/carimus/metrolink/pkg/exclusion"
	"github.com/carimus/metrolink/pkg/metroconfig"
)

// ResolverConfig returns the resolver section for the linked
// dependencies: a blacklistRE when anything needs excluding, otherwise an
// empty section.
func ResolverConfig(devPaths, modules, dirs []string) metroconfig.Config {
	group := exclusion.BuildGroup(devPaths, modules, dirs)
	if group == nil {
		return metroconfig.Config{}
	}
	return metroconfig.Config{
		metroconfig.KeyBlacklistRE: exclusion.BlacklistSource(group),
	}
}

// WatchFolders concatenates the dev paths, the additional folders and the
// folders existing already declares, in that order. Duplicates are kept.
func WatchFolders(devPaths, additional []string, existing metroconfig.Config) []string {
	declared := existing.WatchFolders()
	folders := make([]string, 0, len(devPaths)+len(additional)+len(declared))
	folders = append(folders, devPaths...)
	folders = append(folders, additional...)
	folders = append(folders, declared...)
	return folders
}
