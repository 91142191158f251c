// Package history abstracts the navigation-history mechanism the router
// drives and listens to.
//
// The router only depends on the History and Environment interfaces; in a
// browser-backed build those are implemented over the host history API,
// while MemoryHistory provides a complete in-process implementation for
// headless use and tests.
package history

// History is a record-and-notify service over an entry stack. Push and
// Replace record entries; Listen subscribes to back/forward traversal
// notifications (entries recorded via Push or Replace do not notify).
type History interface {
	// Push appends a new entry and makes it current.
	Push(path string)

	// Replace swaps the current entry in place.
	Replace(path string)

	// Listen registers fn to run after a back/forward traversal. The
	// returned stop function removes the listener; calling it more than
	// once is a no-op.
	Listen(fn func()) (stop func())
}

// Environment extends History with access to the current location. It is
// the full set of host integration points the router needs.
type Environment interface {
	History

	// Path returns the current location as pathname+search+hash.
	Path() string

	// Resolve normalizes a possibly relative reference against the
	// current location. Cross-host targets stay absolute.
	Resolve(ref string) string

	// Assign performs a full navigation to path, leaving the current
	// document. Everything after the triggering call is unreachable in a
	// real browser; implementations outside one record the departure.
	Assign(path string)
}
