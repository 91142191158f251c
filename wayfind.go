// Package wayfind provides the public API for the Wayfind navigation
// library.
//
// This is the recommended import for most applications:
//
//	import "github.com/wayfind-dev/wayfind"
//
// Usage:
//
//	h, _ := history.NewMemory("https://example.com", "/")
//	wayfind.SetDefault(wayfind.New(wayfind.WithHistory(h)))
//
//	_ = wayfind.AddRoutes([]wayfind.RouteSpec{
//	    {Path: "/", Name: "home"},
//	    {Path: "/users/:id", Name: "user"},
//	})
//	unregister, _ := wayfind.Register(func(loc *wayfind.Location) { /* render */ })
//	_ = wayfind.Navigate("/users/42")
//
// The package-level functions operate on a process-wide default Router
// for ergonomic use; construct independent Routers with New for isolated
// contexts (tests, multiple windows).
package wayfind

import (
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Re-exported core types so most applications only import this package.
type (
	Router         = router.Router
	RouteSpec      = router.RouteSpec
	Route          = router.Route
	Location       = router.Location
	ExternalPolicy = router.ExternalPolicy
	Event          = router.Event
	Subscriber     = router.Subscriber
	NavigateOption = router.NavigateOption
	Option         = router.Option
	Middleware     = router.Middleware
	Operation      = router.Operation
)

// Re-exported sentinel errors.
var (
	ErrInvalidArgument = router.ErrInvalidArgument
	ErrNotFound        = router.ErrNotFound
)

// Re-exported constructors and options.
var (
	New             = router.New
	WithHistory     = router.WithHistory
	WithCompiler    = router.WithCompiler
	WithResolver    = router.WithResolver
	WithCurrentPath = router.WithCurrentPath
	WithAssign      = router.WithAssign
	External        = router.External
	ExternalFunc    = router.ExternalFunc
	WithReplace     = router.WithReplace
	WithEvent       = router.WithEvent
)

var (
	defaultMu     sync.Mutex
	defaultRouter *router.Router
)

// Default returns the process-wide Router, creating an environment-less
// one on first use. Without a history mechanism every navigation takes
// the external fallback, so real applications call SetDefault with a
// configured Router during startup.
func Default() *Router {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRouter == nil {
		defaultRouter = router.New()
	}
	return defaultRouter
}

// SetDefault replaces the process-wide Router.
func SetDefault(r *Router) {
	defaultMu.Lock()
	defaultRouter = r
	defaultMu.Unlock()
}

// AddRoutes registers routes on the default Router.
func AddRoutes(specs []RouteSpec) error {
	return Default().AddRoutes(specs)
}

// RemoveRoute removes the first route with the given name from the
// default Router.
func RemoveRoute(name string) {
	Default().RemoveRoute(name)
}

// PathFor generates the path for a named route on the default Router.
func PathFor(name string, params map[string]string) (string, error) {
	return Default().PathFor(name, params)
}

// Match resolves a path against the default Router's registry.
func Match(path string) *router.Match {
	return Default().Match(path)
}

// Navigate dispatches a navigation on the default Router.
func Navigate(path string, opts ...NavigateOption) error {
	return Default().Navigate(path, opts...)
}

// NavigateToRoute navigates to a named route on the default Router.
func NavigateToRoute(name string, params map[string]string, opts ...NavigateOption) error {
	return Default().NavigateToRoute(name, params, opts...)
}

// NavigatorFor returns a bound navigation closure on the default Router.
func NavigatorFor(path string, opts ...NavigateOption) func(Event) error {
	return Default().NavigatorFor(path, opts...)
}

// NavigatorForRoute returns a bound named-route navigation closure on the
// default Router.
func NavigatorForRoute(name string, params map[string]string, opts ...NavigateOption) func(Event) error {
	return Default().NavigatorForRoute(name, params, opts...)
}

// Register subscribes to location broadcasts on the default Router.
func Register(fn Subscriber) (unregister func(), err error) {
	return Default().Register(fn)
}

// GetLocation resolves and broadcasts a location on the default Router.
func GetLocation(path string) *Location {
	return Default().GetLocation(path)
}
