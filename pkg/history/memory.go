package history

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/routepath"
)

// MemoryHistory is an in-process Environment: an entry stack with an index
// cursor, host-aware reference resolution, and back/forward notification.
// It stands in for the browser history in tests and headless programs.
type MemoryHistory struct {
	mu        sync.Mutex
	base      *url.URL
	entries   []string
	index     int
	listeners []*memoryListener
	departed  string
}

type memoryListener struct {
	fn      func()
	removed bool
}

// NewMemory creates a MemoryHistory rooted at origin (scheme://host) with
// initialPath as the first entry.
func NewMemory(origin, initialPath string) (*MemoryHistory, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("history: invalid origin %q: %w", origin, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("history: origin %q must include scheme and host", origin)
	}
	if initialPath == "" {
		initialPath = "/"
	}
	return &MemoryHistory{
		base:    base,
		entries: []string{initialPath},
	}, nil
}

// Push implements History. Entries ahead of the cursor are discarded, the
// way a browser drops its forward stack on a new navigation.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
}

// Replace implements History.
func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = path
}

// Listen implements History.
func (h *MemoryHistory) Listen(fn func()) (stop func()) {
	l := &memoryListener{fn: fn}
	h.mu.Lock()
	h.listeners = append(h.listeners, l)
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if l.removed {
			return
		}
		l.removed = true
		for i, cur := range h.listeners {
			if cur == l {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				break
			}
		}
	}
}

// Back moves the cursor one entry backwards and notifies listeners. It is
// a no-op at the oldest entry.
func (h *MemoryHistory) Back() {
	h.traverse(-1)
}

// Forward moves the cursor one entry forwards and notifies listeners. It
// is a no-op at the newest entry.
func (h *MemoryHistory) Forward() {
	h.traverse(+1)
}

func (h *MemoryHistory) traverse(delta int) {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return
	}
	h.index = next

	// Snapshot so listeners can unsubscribe from within the callback.
	fns := make([]func(), 0, len(h.listeners))
	for _, l := range h.listeners {
		fns = append(fns, l.fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Path implements Environment.
func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Resolve implements Environment.
func (h *MemoryHistory) Resolve(ref string) string {
	return routepath.Resolve(h.currentURL(), ref)
}

// Assign implements Environment. The departure target is recorded and the
// entry stack is left untouched; a real browser would unload the page.
func (h *MemoryHistory) Assign(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.departed = path
}

// Departed returns the target of the last Assign call, or "" if the
// history never left the site.
func (h *MemoryHistory) Departed() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.departed
}

// Entries returns a copy of the entry stack, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Index returns the cursor position within Entries.
func (h *MemoryHistory) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}

func (h *MemoryHistory) currentURL() *url.URL {
	h.mu.Lock()
	entry := h.entries[h.index]
	h.mu.Unlock()

	ref, err := url.Parse(entry)
	if err != nil {
		return h.base
	}
	return h.base.ResolveReference(ref)
}
