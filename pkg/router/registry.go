package router

import (
	"fmt"

	"github.com/wayfind-dev/wayfind/pkg/pattern"
)

// Route is a registered route: the declaring spec plus its compiled
// pattern. Every Route held by a Router compiled successfully.
type Route struct {
	RouteSpec
	pattern pattern.Pattern
}

// Matcher exposes the compiled pattern.
func (rt *Route) Matcher() pattern.Pattern {
	return rt.pattern
}

// AddRoutes compiles and appends routes in input order. Existing routes
// are preserved; the new ones are appended after them.
//
// The batch is atomic: every spec is validated and compiled before any is
// appended, so a failing spec leaves the registry untouched. The error is
// an InvalidArgumentError naming the offending spec.
func (r *Router) AddRoutes(specs []RouteSpec) error {
	if specs == nil {
		return &InvalidArgumentError{Reason: "route list must not be nil"}
	}

	compiled := make([]*Route, 0, len(specs))
	for i, spec := range specs {
		src, err := spec.pathSpec()
		if err != nil {
			return &InvalidArgumentError{Reason: fmt.Sprintf("route %d: %v", i, err)}
		}
		p, err := r.compile(src)
		if err != nil {
			return &InvalidArgumentError{Reason: fmt.Sprintf("route %d: %v", i, err)}
		}
		compiled = append(compiled, &Route{RouteSpec: spec, pattern: p})
	}

	r.mu.Lock()
	r.routes = append(r.routes, compiled...)
	r.mu.Unlock()
	return nil
}

// RemoveRoute removes the first route whose name equals name. Removing an
// unknown name is a no-op.
func (r *Router) RemoveRoute(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, rt := range r.routes {
		if rt.Name == name {
			idx = i
			break
		}
	}
	if idx >= 0 {
		// Fresh slice rather than in-place shift: Match iterates a
		// snapshot of the old header.
		next := make([]*Route, 0, len(r.routes)-1)
		next = append(next, r.routes[:idx]...)
		next = append(next, r.routes[idx+1:]...)
		r.routes = next
	}
}

// Routes returns a snapshot of the registry in registration order.
func (r *Router) Routes() []*Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// PathFor generates the path for the first registered route named name,
// substituting params into its pattern. It fails with a NotFoundError
// when no route carries the name.
func (r *Router) PathFor(name string, params map[string]string) (string, error) {
	r.mu.Lock()
	var found *Route
	for _, rt := range r.routes {
		if rt.Name == name {
			found = rt
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return "", &NotFoundError{Name: name}
	}
	path, err := found.pattern.Stringify(params)
	if err != nil {
		return "", fmt.Errorf("router: path for %q: %w", name, err)
	}
	return path, nil
}
