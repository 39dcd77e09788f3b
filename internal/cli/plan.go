package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carimus/metrolink/internal/commands"
	"github.com/carimus/metrolink/pkg/linked"
	"github.com/carimus/metrolink/pkg/metroconfig"
)

// linkFlags extend the configured linked options from the command line
type linkFlags struct {
	blacklist   []string
	excludeDirs []string
	watch       []string
}

func (f *linkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.blacklist, "blacklist", nil, commands.MsgFlagBlacklist)
	cmd.Flags().StringArrayVar(&f.excludeDirs, "exclude-dir", nil, commands.MsgFlagExcludeDir)
	cmd.Flags().StringArrayVar(&f.watch, "watch", nil, commands.MsgFlagWatch)
}

// options merges the loaded settings with the flags
func (s *session) options(f *linkFlags) linked.Options {
	opts := s.cfg.LinkedOptions()
	if f != nil {
		opts.BlacklistLinkedModules = append(append([]string(nil), opts.BlacklistLinkedModules...), f.blacklist...)
		opts.BlacklistDirectories = append(append([]string(nil), opts.BlacklistDirectories...), f.excludeDirs...)
		opts.AdditionalWatchFolders = append(append([]string(nil), opts.AdditionalWatchFolders...), f.watch...)
	}
	return opts
}

// plan is everything derived from the project before a configuration is
// touched
type plan struct {
	root       string
	opts       linked.Options
	devPaths   []string
	dirs       []string
	additional []string
}

func (s *session) plan(f *linkFlags) (*plan, error) {
	opts := s.options(f)
	root, _ := s.linker.ProjectRoot(opts)

	devPaths, err := s.linker.ResolveDevPaths(root)
	if err != nil {
		return nil, err
	}
	dirs, err := s.linker.ResolvePaths(root, opts.BlacklistDirectories, opts.ResolveBlacklistDirectoriesSymlinks)
	if err != nil {
		return nil, err
	}
	additional, err := s.linker.ResolvePaths(root, opts.AdditionalWatchFolders, opts.ResolveAdditionalWatchFoldersSymlinks)
	if err != nil {
		return nil, err
	}

	return &plan{root: root, opts: opts, devPaths: devPaths, dirs: dirs, additional: additional}, nil
}

// loadMetro reads the Metro document named by path, or by the settings
// when path is empty. No document at all is an empty configuration.
func (s *session) loadMetro(path string) (metroconfig.Config, error) {
	if path == "" {
		path = s.cfg.Metro.Config
	}
	if path == "" {
		return metroconfig.Config{}, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	return metroconfig.Load(s.fs, path)
}
