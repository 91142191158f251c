package router

// NavigateOptions configures a single navigation.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool

	// Event is the UI trigger event, if the navigation originated from
	// one. A handled event short-circuits the navigation; a cancelable
	// one is marked handled before dispatch.
	Event Event
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// WithEvent attaches the originating UI event to the navigation.
func WithEvent(ev Event) NavigateOption {
	return func(o *NavigateOptions) {
		o.Event = ev
	}
}

// Navigate resolves path and dispatches it.
//
// An already-handled event makes the call a no-op; a cancelable event is
// marked handled and its propagation stopped, synchronously, before
// anything else. The path then normalizes through the path-resolution
// helper. With a history mechanism present, an empty resolved path is an
// InvalidArgumentError; a match on a non-external route updates history
// (push, or replace with WithReplace) and broadcasts the new Location.
// Without a match, with an external route, or without a history mechanism
// the full-page fallback takes over via the assign sink.
func (r *Router) Navigate(path string, opts ...NavigateOption) error {
	var options NavigateOptions
	for _, opt := range opts {
		opt(&options)
	}

	if ev := options.Event; ev != nil {
		if ev.DefaultPrevented() {
			return nil
		}
		if ce, ok := ev.(CancelableEvent); ok {
			ce.PreventDefault()
			ce.StopPropagation()
		}
	}

	op := &Operation{
		Kind:    OpNavigate,
		Path:    r.resolvePath(path),
		Replace: options.Replace,
	}
	return r.dispatch(op, func() error {
		return r.doNavigate(op)
	})
}

func (r *Router) doNavigate(op *Operation) error {
	if r.history != nil {
		if op.Path == "" {
			return &InvalidArgumentError{Reason: "navigation path must be a non-empty string"}
		}
		m := r.Match(op.Path)
		if m != nil && !m.Route.External.IsExternal(m) {
			if op.Replace {
				r.history.Replace(op.Path)
			} else {
				r.history.Push(op.Path)
			}
			op.Location = newLocation(op.Path, m)
			r.broadcast(op.Location)
			return nil
		}
	}

	op.External = true
	r.assignLocation(op.Path)
	return nil
}

// NavigateToRoute generates the path for the named route and navigates to
// it. The lookup miss surfaces as a NotFoundError.
func (r *Router) NavigateToRoute(name string, params map[string]string, opts ...NavigateOption) error {
	path, err := r.PathFor(name, params)
	if err != nil {
		return err
	}
	return r.Navigate(path, opts...)
}

// NavigatorFor returns a closure that navigates to path when invoked,
// carrying the event it is handed. Use it to bind navigations to UI
// trigger points ahead of time.
func (r *Router) NavigatorFor(path string, opts ...NavigateOption) func(Event) error {
	return func(ev Event) error {
		return r.Navigate(path, append(opts[:len(opts):len(opts)], WithEvent(ev))...)
	}
}

// NavigatorForRoute is NavigatorFor over a named route. Path generation
// happens at invocation time, against the registry as it is then.
func (r *Router) NavigatorForRoute(name string, params map[string]string, opts ...NavigateOption) func(Event) error {
	return func(ev Event) error {
		return r.NavigateToRoute(name, params, append(opts[:len(opts):len(opts)], WithEvent(ev))...)
	}
}

// GetLocation resolves path — or the current environment path when path
// is "" — and broadcasts the resulting Location unconditionally, even when
// it is nil or identical to the previous one. It returns the Location.
func (r *Router) GetLocation(path string) *Location {
	if path == "" {
		path = r.environmentPath()
	}

	op := &Operation{Kind: OpResolve, Path: path}
	_ = r.dispatch(op, func() error {
		op.Location = newLocation(path, r.Match(path))
		r.broadcast(op.Location)
		return nil
	})
	return op.Location
}

// handlePop services the history mechanism's back/forward notification.
// Unlike Navigate it never falls back to a full navigation: when the
// current path has no match, or matches an external route, the event is
// suppressed and nothing is broadcast.
func (r *Router) handlePop() {
	op := &Operation{Kind: OpPop, Path: r.environmentPath()}
	_ = r.dispatch(op, func() error {
		m := r.Match(op.Path)
		if m == nil || m.Route.External.IsExternal(m) {
			return nil
		}
		op.Location = newLocation(op.Path, m)
		r.broadcast(op.Location)
		return nil
	})
}
