package router

// OperationKind identifies the navigation operation being dispatched.
type OperationKind int

const (
	// OpNavigate is a programmatic Navigate call.
	OpNavigate OperationKind = iota

	// OpPop is a back/forward notification from the history mechanism.
	OpPop

	// OpResolve is a GetLocation resolution.
	OpResolve
)

// String returns the operation kind's wire/metric label.
func (k OperationKind) String() string {
	switch k {
	case OpNavigate:
		return "navigate"
	case OpPop:
		return "pop"
	case OpResolve:
		return "resolve"
	default:
		return "unknown"
	}
}

// Operation describes one dispatch through the router. Path and Kind are
// set before the middleware chain runs; Location and External are filled
// in by the core as the operation completes.
type Operation struct {
	Kind    OperationKind
	Path    string
	Replace bool

	// Location is the resolved location, nil when nothing matched or the
	// dispatch went external.
	Location *Location

	// External reports that the operation left the router through the
	// full-navigation fallback.
	External bool
}

// Middleware wraps navigation operations. Call next to continue the
// chain; returning without calling it stops the dispatch.
type Middleware interface {
	Handle(op *Operation, next func() error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(op *Operation, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(op *Operation, next func() error) error {
	return f(op, next)
}

// ComposeMiddleware builds a handler chain from middleware and a final
// handler. Middleware executes in order (first to last), with the handler
// at the end.
func ComposeMiddleware(op *Operation, mw []Middleware, handler func() error) error {
	if len(mw) == 0 {
		return handler()
	}

	// Build chain from end to start
	var chain func() error
	chain = handler

	for i := len(mw) - 1; i >= 0; i-- {
		m := mw[i]
		next := chain
		chain = func() error {
			return m.Handle(op, next)
		}
	}

	return chain()
}

// Chain creates a middleware that combines multiple middleware in order.
func Chain(middleware ...Middleware) Middleware {
	return MiddlewareFunc(func(op *Operation, next func() error) error {
		return ComposeMiddleware(op, middleware, next)
	})
}

// Skip is a middleware that skips to the next middleware based on a condition.
func Skip(condition func(op *Operation) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(op *Operation, next func() error) error {
		if condition(op) {
			return next()
		}
		return mw.Handle(op, next)
	})
}

// Only is a middleware that runs only if a condition is true.
func Only(condition func(op *Operation) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(op *Operation, next func() error) error {
		if !condition(op) {
			return next()
		}
		return mw.Handle(op, next)
	})
}
