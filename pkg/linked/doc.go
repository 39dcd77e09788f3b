// Package linked patches a Metro configuration for symlinked dependencies.
//
// Metro does not follow symlinks, so packages installed with `yarn link` or
// `npm link` are invisible to it unless their real directories are watched.
// Watching them brings their own node_modules along, which makes modules
// such as react resolve twice. Linker finds the link targets, adds them to
// watchFolders and builds a resolver.blacklistRE that hides the colliding
// copies:
//
//	linker := linked.NewLinker(filesystem.NewReadOnlyOS(), nil, ui.NewConsoleSink(os.Stderr, ui.FormatAuto))
//	cfg, err := linker.Apply(existing, linked.Options{
//		ProjectRoot:            "/work/app",
//		BlacklistLinkedModules: []string{"react", "react-native"},
//	})
//
// The building blocks (ResolveDevPaths, ResolverConfig, WatchFolders) are
// exported for configurations that already declare a blacklistRE and need
// to combine the pieces themselves.
package linked
