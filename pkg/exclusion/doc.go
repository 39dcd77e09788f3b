// Package exclusion builds the resolver blacklist that hides colliding copies
// of modules nested inside linked dependencies.
//
// A linked package brings its own node_modules, which may hold a second copy
// of something the host project already provides (react, react-native).
// Metro then sees two instances and fails with a naming collision. The group
// built here matches
//
//	<linked package>/node_modules/<module>
//
// and everything beneath it, for every linked package and every listed
// module, plus any extra directories. Blacklist wraps groups the same way
// metro-config's defaults/blacklist does.
//
// Matcher answers the same question with plain string comparisons, so code
// and tests can ask "is this path excluded" without a regexp engine.
package exclusion
