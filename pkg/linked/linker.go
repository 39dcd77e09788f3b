package linked

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/carimus/metrolink/pkg/discovery"
	"github.com/carimus/metrolink/pkg/errors"
	"github.com/carimus/metrolink/pkg/filesystem"
	"github.com/carimus/metrolink/pkg/logging"
	"github.com/carimus/metrolink/pkg/metroconfig"
	"github.com/carimus/metrolink/pkg/types"
	"github.com/carimus/metrolink/pkg/ui"
)

// Linker applies the linked-dependency patch. The zero value uses the
// read-only OS filesystem, manifest discovery and discards warnings.
type Linker struct {
	// FileSystem is read for discovery and path resolution
	FileSystem types.FS
	// Discoverer finds the links under a project root
	Discoverer discovery.Discoverer
	// Sink receives developer warnings
	Sink ui.Sink
	// Getwd is used to infer the project root
	Getwd func() (string, error)
}

// NewLinker creates a Linker. Nil arguments fall back to the defaults of
// the zero value.
func NewLinker(fsys types.FS, discoverer discovery.Discoverer, sink ui.Sink) *Linker {
	return &Linker{FileSystem: fsys, Discoverer: discoverer, Sink: sink}
}

func (l *Linker) fs() types.FS {
	if l.FileSystem == nil {
		l.FileSystem = filesystem.NewReadOnlyOS()
	}
	return l.FileSystem
}

func (l *Linker) discoverer() discovery.Discoverer {
	if l.Discoverer == nil {
		// The default options cannot fail to compile.
		l.Discoverer, _ = discovery.New(l.fs(), discovery.Options{})
	}
	return l.Discoverer
}

func (l *Linker) sink() ui.Sink {
	if l.Sink == nil {
		return ui.Discard
	}
	return l.Sink
}

func (l *Linker) logger() zerolog.Logger {
	return logging.GetLogger("linked")
}

// ProjectRoot returns the absolute project root for opts and whether it
// had to be inferred.
func (l *Linker) ProjectRoot(opts Options) (string, bool) {
	if opts.ProjectRoot != "" {
		abs, err := filepath.Abs(opts.ProjectRoot)
		if err != nil {
			return filepath.Clean(opts.ProjectRoot), false
		}
		return abs, false
	}

	getwd := l.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	return inferRoot(getwd), true
}

// Apply returns cfg patched for the linked dependencies under the project
// root. When there are none cfg itself is returned. Otherwise the patch is
// merged into a copy; cfg is never modified.
//
// A configuration that already sets resolver.blacklistRE is refused,
// since two regular expressions cannot be merged safely.
func (l *Linker) Apply(cfg metroconfig.Config, opts Options) (metroconfig.Config, error) {
	logger := l.logger()
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	root, inferred := l.ProjectRoot(opts)
	if inferred && !opts.Silent {
		warnInferredRoot(l.sink(), root)
	}

	if _, set := cfg.BlacklistRE(); set {
		return nil, errors.New(errors.ErrConfigConflict,
			"refusing to override the resolver.blacklistRE already set in the project configuration. "+
				"Use ResolveDevPaths, WatchFolders and ResolverConfig directly instead of Apply, "+
				"or remove resolver.blacklistRE since regular expressions cannot be merged").
			WithDetail("root", root)
	}

	devPaths, err := l.ResolveDevPaths(root)
	if err != nil {
		return nil, err
	}
	if len(devPaths) == 0 {
		logger.Debug().Str("root", root).Msg("no linked dependencies, configuration unchanged")
		return cfg, nil
	}

	if !opts.Silent {
		WarnDeveloper(l.sink(), devPaths, opts.BlacklistLinkedModules)
	}

	blacklistDirs, err := l.ResolvePaths(root, opts.BlacklistDirectories, opts.ResolveBlacklistDirectoriesSymlinks)
	if err != nil {
		return nil, err
	}
	additional, err := l.ResolvePaths(root, opts.AdditionalWatchFolders, opts.ResolveAdditionalWatchFoldersSymlinks)
	if err != nil {
		return nil, err
	}

	patch := metroconfig.Config{
		metroconfig.KeyResolver:     map[string]interface{}(ResolverConfig(devPaths, opts.BlacklistLinkedModules, blacklistDirs)),
		metroconfig.KeyWatchFolders: WatchFolders(devPaths, additional, cfg),
	}
	logger.Debug().
		Strs("devPaths", devPaths).
		Strs("watchFolders", patch.WatchFolders()).
		Msg("merging linked dependency configuration")

	return metroconfig.Merge(cfg, patch)
}

// Apply runs Linker.Apply with the default filesystem and discovery,
// writing warnings to sink.
func Apply(cfg metroconfig.Config, opts Options, sink ui.Sink) (metroconfig.Config, error) {
	return NewLinker(nil, nil, sink).Apply(cfg, opts)
}
