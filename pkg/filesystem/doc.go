// Package filesystem provides filesystem implementations for metrolink.
//
// This package contains implementations of the types.FS interface (the plain
// OS filesystem and an afero-backed one, read-only by default) together with
// RealPath, which canonicalizes a path by following every symlink along it
// using only Lstat and Readlink.
package filesystem
