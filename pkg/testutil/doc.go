// Package testutil provides helpers for testing metrolink components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with symlink support, for fast isolated
//     discovery and resolution tests
//   - WritePackage, InstallPackage, LinkPackage: build node_modules layouts
//     the way npm and yarn leave them on disk
//   - RecordingSink: a ui.Sink that keeps every notice for assertions
//
// Tests that need the real kernel's symlink behaviour use t.TempDir() trees
// instead.
package testutil
