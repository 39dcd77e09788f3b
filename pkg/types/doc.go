// Package types holds the small interfaces shared across metrolink packages
// so that implementations (OS, afero, in-memory) can live elsewhere without
// import cycles.
package types
