// Package metroconfig holds the Metro bundler configuration document that
// metrolink patches.
//
// The document is opaque: Config is a plain map and only two fields are
// interpreted, resolver.blacklistRE and watchFolders. Everything else passes
// through untouched. The package also provides the merge primitive with
// metro-config's semantics (MergeConfig), the wrapper that removes the empty
// symbolicator section it leaves behind (Merge), and loaders and renderers
// for JSON, YAML, TOML and CommonJS.
package metroconfig
