package router

import (
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/pattern"
)

// Router is the route registry and navigation dispatcher. It owns the
// ordered route list and the subscriber list; everything else — pattern
// compilation, the history mechanism, path resolution — is injected.
//
// The model is synchronous: every operation runs to completion on the
// calling goroutine. A mutex guards the two owned collections so a Router
// can be shared, and broadcasts run outside the lock so subscribers may
// reenter the Router (register, unregister, navigate again).
type Router struct {
	mu          sync.Mutex
	routes      []*Route
	subscribers []*subscription
	middleware  []Middleware

	compile     pattern.Compiler
	history     history.History
	currentPath func() string
	resolve     func(string) string
	assign      func(string)

	stopListen func()
}

// Option configures a Router.
type Option func(*Router)

// WithHistory sets the history mechanism. When the value also implements
// history.Environment, its Path, Resolve and Assign fill any integration
// points not set explicitly.
func WithHistory(h history.History) Option {
	return func(r *Router) { r.history = h }
}

// WithCompiler replaces the default pattern compiler.
func WithCompiler(c pattern.Compiler) Option {
	return func(r *Router) { r.compile = c }
}

// WithResolver sets the path-resolution helper used to normalize
// navigation targets before matching.
func WithResolver(fn func(string) string) Option {
	return func(r *Router) { r.resolve = fn }
}

// WithCurrentPath sets the source of the current environment path, used
// by GetLocation and by back/forward handling.
func WithCurrentPath(fn func() string) Option {
	return func(r *Router) { r.currentPath = fn }
}

// WithAssign sets the full-page navigation sink used when a target is
// external or no history mechanism is available.
func WithAssign(fn func(string)) Option {
	return func(r *Router) { r.assign = fn }
}

// New creates a Router. With no options it compiles patterns with
// pattern.Compile and has no history mechanism, so every navigation takes
// the external fallback.
func New(opts ...Option) *Router {
	r := &Router{compile: pattern.Compile}
	for _, opt := range opts {
		opt(r)
	}

	if env, ok := r.history.(history.Environment); ok {
		if r.currentPath == nil {
			r.currentPath = env.Path
		}
		if r.resolve == nil {
			r.resolve = env.Resolve
		}
		if r.assign == nil {
			r.assign = env.Assign
		}
	}
	if r.history != nil {
		r.stopListen = r.history.Listen(r.handlePop)
	}
	return r
}

// Use appends middleware wrapping every navigation operation, executed in
// registration order.
func (r *Router) Use(mw ...Middleware) {
	r.mu.Lock()
	r.middleware = append(r.middleware, mw...)
	r.mu.Unlock()
}

// Close detaches the Router from the history mechanism's back/forward
// notification. Routes and subscribers are left in place.
func (r *Router) Close() {
	if r.stopListen != nil {
		r.stopListen()
		r.stopListen = nil
	}
}

// resolvePath normalizes a navigation target via the configured helper.
func (r *Router) resolvePath(path string) string {
	if r.resolve == nil {
		return path
	}
	return r.resolve(path)
}

// environmentPath returns the current environment path, "" when no source
// is configured.
func (r *Router) environmentPath() string {
	if r.currentPath == nil {
		return ""
	}
	return r.currentPath()
}

// assignLocation hands a path to the full-page navigation sink. In a
// browser this unloads the document; code after the triggering call
// should treat itself as unreachable.
func (r *Router) assignLocation(path string) {
	if r.assign != nil {
		r.assign(path)
	}
}

// dispatch runs op's core through the middleware chain.
func (r *Router) dispatch(op *Operation, core func() error) error {
	r.mu.Lock()
	mw := make([]Middleware, len(r.middleware))
	copy(mw, r.middleware)
	r.mu.Unlock()
	return ComposeMiddleware(op, mw, core)
}
