package router

import (
	"regexp"
)

// RouteSpec declares a route: a path pattern, an optional name for reverse
// lookup, and an externality policy. Specs are immutable once registered.
type RouteSpec struct {
	// Path is the string pattern (":name" params, "*name" catch-all).
	// Exactly one of Path and Pattern must be set.
	Path string

	// Pattern is a regular-expression path spec. Named capture groups
	// become parameters.
	Pattern *regexp.Regexp

	// Name identifies the route for RemoveRoute, PathFor and
	// NavigateToRoute. Names are not unique-enforced; lookups find the
	// first registered occurrence.
	Name string

	// External decides whether a matched navigation leaves the router.
	External ExternalPolicy
}

// pathSpec returns the spec to hand to the pattern compiler.
func (s RouteSpec) pathSpec() (any, error) {
	switch {
	case s.Path != "" && s.Pattern != nil:
		return nil, &InvalidArgumentError{Reason: "route sets both Path and Pattern"}
	case s.Pattern != nil:
		return s.Pattern, nil
	case s.Path != "":
		return s.Path, nil
	default:
		return nil, &InvalidArgumentError{Reason: "route sets neither Path nor Pattern"}
	}
}

// ExternalPolicy is the externality verdict for a route: either a static
// flag or a predicate evaluated against the Match. The zero value is
// internal.
type ExternalPolicy struct {
	static bool
	fn     func(*Match) bool
}

// External returns a static externality policy.
func External(v bool) ExternalPolicy {
	return ExternalPolicy{static: v}
}

// ExternalFunc returns a dynamic externality policy. The predicate is
// invoked with the Match each time the route matches a navigation.
func ExternalFunc(fn func(*Match) bool) ExternalPolicy {
	return ExternalPolicy{fn: fn}
}

// IsExternal resolves the policy for a concrete match.
func (p ExternalPolicy) IsExternal(m *Match) bool {
	if p.fn != nil {
		return p.fn(m)
	}
	return p.static
}

// Match is the result of resolving a path against the registry.
type Match struct {
	// Route is the first registered route whose pattern accepted the
	// pathname.
	Route *Route

	Pathname   string
	Search     string
	Hash       string
	HashSearch string

	// State merges query parameters from the primary and hash query
	// strings with the extracted path parameters. Path parameters win on
	// key collision; within the query strings the hash query wins.
	State map[string]string
}

// Location is the externally observable navigation state delivered to
// subscribers. A nil Location means no route matched.
type Location struct {
	// Path is the resolved path the location was derived from.
	Path string

	// Name is the matched route's name, "" when the route is unnamed.
	Name string

	Pathname   string
	Search     string
	Hash       string
	HashSearch string
	State      map[string]string
}

// newLocation derives a Location from a match. A nil match yields nil.
func newLocation(path string, m *Match) *Location {
	if m == nil {
		return nil
	}
	return &Location{
		Path:       path,
		Name:       m.Route.Name,
		Pathname:   m.Pathname,
		Search:     m.Search,
		Hash:       m.Hash,
		HashSearch: m.HashSearch,
		State:      m.State,
	}
}

// Event is the minimal view of a UI trigger event handed to Navigate.
type Event interface {
	// DefaultPrevented reports whether the event was already handled.
	DefaultPrevented() bool
}

// CancelableEvent is an Event whose default action can be suppressed. When
// Navigate receives one, it marks the event handled and stops its
// propagation before doing anything else.
type CancelableEvent interface {
	Event
	PreventDefault()
	StopPropagation()
}
