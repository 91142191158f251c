// Package router implements the Wayfind route registry and navigation
// dispatcher.
//
// A Router holds an ordered list of declarative routes, resolves raw
// paths (with query and hash components) into structured matches, decides
// between internal and external navigation, and broadcasts every resolved
// Location to registered subscribers.
//
// # Routes
//
// Routes are declared with RouteSpec and registered in order; matching
// always returns the first registered route that accepts the pathname:
//
//	r := router.New(router.WithHistory(h))
//	err := r.AddRoutes([]router.RouteSpec{
//	    {Path: "/", Name: "home"},
//	    {Path: "/users/:id", Name: "user"},
//	    {Path: "/logout", Name: "logout", External: router.External(true)},
//	})
//
// # Navigation
//
// Navigate normalizes the target, matches it, and either records a
// history entry and broadcasts the new Location (internal) or hands the
// path to the full-page navigation sink (external):
//
//	unregister, _ := r.Register(func(loc *router.Location) {
//	    // render loc
//	})
//	_ = r.Navigate("/users/42")
//
// Back/forward traversal reported by the history mechanism re-resolves
// the current path and broadcasts it; unmatched or external paths are
// suppressed rather than re-dispatched.
//
// # Collaborators
//
// Pattern compilation (pkg/pattern), the history mechanism (pkg/history)
// and path resolution (pkg/routepath) are injected collaborators; the
// router only consumes their contracts.
package router
