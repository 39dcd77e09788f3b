// Package discovery finds symlinked dependencies below a JavaScript project
// root, the way `yarn link` / `npm link` leave them in node_modules.
//
// Discoverers return link paths exactly as found (not resolved); callers
// canonicalize them. Two strategies exist:
//
//   - manifest: follow package.json dependency declarations, descending into
//     each linked package and resolving its own dependencies from its real
//     location. This is the default.
//   - scan: list node_modules (including @scope directories) and report every
//     entry that is a symlink.
package discovery
