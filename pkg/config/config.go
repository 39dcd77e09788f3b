package config

import (
	_ "embed"

	"github.com/carimus/metrolink/pkg/discovery"
	"github.com/carimus/metrolink/pkg/linked"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds metrolink's settings
type Config struct {
	ProjectRoot string    `koanf:"project_root" toml:"project_root"`
	Silent      bool      `koanf:"silent" toml:"silent"`
	Linked      Linked    `koanf:"linked" toml:"linked"`
	Discovery   Discovery `koanf:"discovery" toml:"discovery"`
	Metro       Metro     `koanf:"metro" toml:"metro"`

	// Sources lists where values were loaded from, in load order
	Sources []string `koanf:"-" toml:"-"`
}

// Linked mirrors linked.Options
type Linked struct {
	BlacklistModules                      []string `koanf:"blacklist_modules" toml:"blacklist_modules"`
	BlacklistDirectories                  []string `koanf:"blacklist_directories" toml:"blacklist_directories"`
	ResolveBlacklistDirectoriesSymlinks   bool     `koanf:"resolve_blacklist_directories_symlinks" toml:"resolve_blacklist_directories_symlinks"`
	AdditionalWatchFolders                []string `koanf:"additional_watch_folders" toml:"additional_watch_folders"`
	ResolveAdditionalWatchFoldersSymlinks bool     `koanf:"resolve_additional_watch_folders_symlinks" toml:"resolve_additional_watch_folders_symlinks"`
}

// Discovery mirrors discovery.Options
type Discovery struct {
	Strategy  string   `koanf:"strategy" toml:"strategy"`
	Ignore    []string `koanf:"ignore" toml:"ignore"`
	Recursive bool     `koanf:"recursive" toml:"recursive"`
}

// Metro locates the configuration document to patch and where to write it
type Metro struct {
	Config string `koanf:"config" toml:"config"`
	Format string `koanf:"format" toml:"format"`
	Out    string `koanf:"out" toml:"out"`
}

// LinkedOptions converts the settings into options for linked.Linker.Apply
func (c *Config) LinkedOptions() linked.Options {
	return linked.Options{
		ProjectRoot:                           c.ProjectRoot,
		BlacklistLinkedModules:                c.Linked.BlacklistModules,
		BlacklistDirectories:                  c.Linked.BlacklistDirectories,
		ResolveBlacklistDirectoriesSymlinks:   c.Linked.ResolveBlacklistDirectoriesSymlinks,
		AdditionalWatchFolders:                c.Linked.AdditionalWatchFolders,
		ResolveAdditionalWatchFoldersSymlinks: c.Linked.ResolveAdditionalWatchFoldersSymlinks,
		Silent:                                c.Silent,
	}
}

// DiscoveryOptions converts the settings into options for discovery.New
func (c *Config) DiscoveryOptions() discovery.Options {
	return discovery.Options{
		Strategy:  c.Discovery.Strategy,
		Ignore:    c.Discovery.Ignore,
		Recursive: c.Discovery.Recursive,
	}
}
