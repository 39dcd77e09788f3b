package linked

// Options controls Apply
type Options struct {
	// ProjectRoot is the directory whose node_modules is inspected. Empty
	// means the working directory, with a warning unless Silent is set.
	ProjectRoot string
	// BlacklistLinkedModules are package names hidden inside every linked
	// package's node_modules, typically react and react-native.
	BlacklistLinkedModules []string
	// BlacklistDirectories are extra directories excluded with everything
	// beneath them. Relative entries are resolved against the project root.
	BlacklistDirectories []string
	// ResolveBlacklistDirectoriesSymlinks follows symlinks in
	// BlacklistDirectories. Defaults to true.
	ResolveBlacklistDirectoriesSymlinks bool
	// AdditionalWatchFolders are appended to the watch list after the link
	// targets. Relative entries are resolved against the project root.
	AdditionalWatchFolders []string
	// ResolveAdditionalWatchFoldersSymlinks follows symlinks in
	// AdditionalWatchFolders. Defaults to true.
	ResolveAdditionalWatchFoldersSymlinks bool
	// Silent suppresses every developer warning
	Silent bool
}

// DefaultOptions returns the documented defaults: inferred root, nothing
// blacklisted, no extra folders, symlinks followed, warnings on.
func DefaultOptions() Options {
	return Options{
		ResolveBlacklistDirectoriesSymlinks:   true,
		ResolveAdditionalWatchFoldersSymlinks: true,
	}
}
