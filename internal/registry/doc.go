// Package registry is the dispatch table that maps a (day, part) pair to the
// compiled Go function solving it.
//
// Day modules never reference each other. Each one implements Module and adds
// its solvers during application startup; the app then looks solvers up by
// Key. Registering the same key twice is a programming error and panics, so a
// mismatch between modules is caught before any input is read.
package registry
