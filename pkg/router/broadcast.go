package router

// Subscriber observes resolved locations. The Location is nil when the
// broadcast path matched no route.
type Subscriber func(*Location)

// subscription wraps a Subscriber so removal works by identity even when
// the same function value is registered twice.
type subscription struct {
	fn      Subscriber
	removed bool
}

// Register appends fn to the subscriber list and returns its unregister
// function. Unregistering twice is a no-op; after the first call the
// callback never fires again. A nil fn is an InvalidArgumentError.
func (r *Router) Register(fn Subscriber) (unregister func(), err error) {
	if fn == nil {
		return nil, &InvalidArgumentError{Reason: "subscriber must not be nil"}
	}

	s := &subscription{fn: fn}
	r.mu.Lock()
	r.subscribers = append(r.subscribers, s)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if s.removed {
			return
		}
		s.removed = true
		for i, cur := range r.subscribers {
			if cur == s {
				next := make([]*subscription, 0, len(r.subscribers)-1)
				next = append(next, r.subscribers[:i]...)
				next = append(next, r.subscribers[i+1:]...)
				r.subscribers = next
				break
			}
		}
	}, nil
}

// broadcast delivers loc to every subscriber in registration order. The
// list is snapshotted first, so subscribers may register or unregister
// from within their callback without disturbing this delivery; a
// subscriber unregistered mid-broadcast is skipped if its turn has not
// come yet.
func (r *Router) broadcast(loc *Location) {
	r.mu.Lock()
	snapshot := make([]*subscription, len(r.subscribers))
	copy(snapshot, r.subscribers)
	r.mu.Unlock()

	for _, s := range snapshot {
		r.mu.Lock()
		removed := s.removed
		r.mu.Unlock()
		if removed {
			continue
		}
		s.fn(loc)
	}
}
