package router

import (
	"errors"
	"testing"
)

// testEvent implements CancelableEvent.
type testEvent struct {
	prevented bool
	stopped   bool
}

func (e *testEvent) DefaultPrevented() bool { return e.prevented }
func (e *testEvent) PreventDefault()        { e.prevented = true }
func (e *testEvent) StopPropagation()       { e.stopped = true }

// plainEvent implements only Event, without cancellation support.
type plainEvent struct {
	prevented bool
}

func (e *plainEvent) DefaultPrevented() bool { return e.prevented }

func TestNavigateInternalPush(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/users/:id", Name: "user"})

	var got *Location
	if _, err := r.Register(func(loc *Location) { got = loc }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := r.Navigate("/users/42?tab=posts"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}

	if h.Path() != "/users/42?tab=posts" {
		t.Errorf("history path = %q", h.Path())
	}
	if len(h.Entries()) != 2 {
		t.Errorf("len(entries) = %d, want 2 (push)", len(h.Entries()))
	}
	if got == nil {
		t.Fatal("expected broadcast")
	}
	if got.Name != "user" || got.State["id"] != "42" || got.State["tab"] != "posts" {
		t.Errorf("location = %+v", got)
	}
	if got.Path != "/users/42?tab=posts" {
		t.Errorf("location path = %q", got.Path)
	}
}

func TestNavigateReplace(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/a", Name: "a"})

	if err := r.Navigate("/a", WithReplace()); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if len(h.Entries()) != 1 {
		t.Errorf("len(entries) = %d, want 1 (replace)", len(h.Entries()))
	}
	if h.Path() != "/a" {
		t.Errorf("history path = %q", h.Path())
	}
}

func TestNavigateRelativeResolution(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/settings", Name: "settings"})

	h.Push("/dashboard")
	if err := r.Navigate("settings"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Path() != "/settings" {
		t.Errorf("history path = %q, want resolved %q", h.Path(), "/settings")
	}
}

func TestNavigateExternalRoute(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/logout", Name: "logout", External: External(true)})

	fired := false
	if _, err := r.Register(func(*Location) { fired = true }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := r.Navigate("/logout"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}

	if fired {
		t.Error("external navigation must not broadcast")
	}
	if len(h.Entries()) != 1 || h.Path() != "/" {
		t.Errorf("external navigation must not touch history, entries = %v", h.Entries())
	}
	if h.Departed() != "/logout" {
		t.Errorf("Departed = %q, want full-navigation fallback", h.Departed())
	}
}

func TestNavigateExternalPredicate(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{
		Path: "/files/:name",
		Name: "files",
		External: ExternalFunc(func(m *Match) bool {
			return m.State["name"] == "report.pdf"
		}),
	})

	if err := r.Navigate("/files/readme"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Path() != "/files/readme" {
		t.Errorf("internal verdict should push, path = %q", h.Path())
	}

	if err := r.Navigate("/files/report.pdf"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Departed() != "/files/report.pdf" {
		t.Errorf("Departed = %q, want external verdict", h.Departed())
	}
}

func TestNavigateNoMatchFallsBack(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/known", Name: "known"})

	if err := r.Navigate("/unknown"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Departed() != "/unknown" {
		t.Errorf("Departed = %q, want fallback to full navigation", h.Departed())
	}
	if len(h.Entries()) != 1 {
		t.Error("no-match navigation must not touch history")
	}
}

func TestNavigateCrossHostStaysExternal(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/x", Name: "x"})

	if err := r.Navigate("https://other.example.net/x"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Departed() != "https://other.example.net/x" {
		t.Errorf("Departed = %q, want absolute external URL", h.Departed())
	}
}

func TestNavigateNoHistoryMechanism(t *testing.T) {
	var assigned string
	r := New(WithAssign(func(path string) { assigned = path }))
	if err := r.AddRoutes([]RouteSpec{{Path: "/a", Name: "a"}}); err != nil {
		t.Fatalf("AddRoutes error: %v", err)
	}

	fired := false
	if _, err := r.Register(func(*Location) { fired = true }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// Even a matching internal route goes external without history.
	if err := r.Navigate("/a"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if assigned != "/a" {
		t.Errorf("assigned = %q", assigned)
	}
	if fired {
		t.Error("no broadcast without a history mechanism")
	}
}

func TestNavigateEmptyPathWithHistory(t *testing.T) {
	r, _ := newTestRouter(t)
	if err := r.Navigate(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Navigate(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestNavigateHandledEventIsNoOp(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/a", Name: "a"})

	fired := false
	if _, err := r.Register(func(*Location) { fired = true }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	ev := &testEvent{prevented: true}
	if err := r.Navigate("/a", WithEvent(ev)); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if fired || len(h.Entries()) != 1 {
		t.Error("handled event must make Navigate a no-op")
	}
}

func TestNavigateMarksCancelableEvent(t *testing.T) {
	r, _ := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/a", Name: "a"})

	ev := &testEvent{}
	if err := r.Navigate("/a", WithEvent(ev)); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if !ev.prevented {
		t.Error("cancelable event should be marked handled")
	}
	if !ev.stopped {
		t.Error("cancelable event propagation should be stopped")
	}
}

func TestNavigatePlainEvent(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/a", Name: "a"})

	// An event without cancellation support still navigates.
	if err := r.Navigate("/a", WithEvent(&plainEvent{})); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	if h.Path() != "/a" {
		t.Errorf("history path = %q", h.Path())
	}
}

func TestNavigateToRoute(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/users/:id", Name: "users"})

	if err := r.NavigateToRoute("users", map[string]string{"id": "7"}); err != nil {
		t.Fatalf("NavigateToRoute error: %v", err)
	}
	if h.Path() != "/users/7" {
		t.Errorf("history path = %q", h.Path())
	}

	err := r.NavigateToRoute("missing", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("NavigateToRoute error = %v, want ErrNotFound", err)
	}
}

func TestNavigatorFor(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/a", Name: "a"})

	nav := r.NavigatorFor("/a")
	ev := &testEvent{}
	if err := nav(ev); err != nil {
		t.Fatalf("navigator error: %v", err)
	}
	if h.Path() != "/a" {
		t.Errorf("history path = %q", h.Path())
	}
	if !ev.prevented {
		t.Error("navigator should mark its event handled")
	}
}

func TestNavigatorForRoute(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/users/:id", Name: "users"})

	nav := r.NavigatorForRoute("users", map[string]string{"id": "9"})
	if err := nav(nil); err != nil {
		t.Fatalf("navigator error: %v", err)
	}
	if h.Path() != "/users/9" {
		t.Errorf("history path = %q", h.Path())
	}
}

func TestGetLocation(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/users/:id", Name: "users"})

	var calls int
	var last *Location
	if _, err := r.Register(func(loc *Location) { calls++; last = loc }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	loc := r.GetLocation("/users/42")
	if loc == nil || loc.State["id"] != "42" {
		t.Fatalf("GetLocation = %+v", loc)
	}
	if calls != 1 || last != loc {
		t.Error("GetLocation must broadcast the returned location")
	}

	// No de-duplication: resolving the same path broadcasts again.
	r.GetLocation("/users/42")
	if calls != 2 {
		t.Errorf("calls = %d, want unconditional broadcast", calls)
	}

	// A null result still broadcasts.
	if got := r.GetLocation("/nope"); got != nil {
		t.Errorf("GetLocation(/nope) = %+v, want nil", got)
	}
	if calls != 3 || last != nil {
		t.Error("nil location should be broadcast")
	}

	// Empty path resolves the current environment path.
	h.Push("/users/7")
	loc = r.GetLocation("")
	if loc == nil || loc.State["id"] != "7" {
		t.Errorf("GetLocation(\"\") = %+v", loc)
	}
}

func TestBackForwardBroadcast(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r,
		RouteSpec{Path: "/", Name: "home"},
		RouteSpec{Path: "/a", Name: "a"},
	)

	var got []*Location
	if _, err := r.Register(func(loc *Location) { got = append(got, loc) }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := r.Navigate("/a"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	h.Back()
	h.Forward()

	if len(got) != 3 {
		t.Fatalf("broadcasts = %d, want 3", len(got))
	}
	if got[1].Name != "home" || got[2].Name != "a" {
		t.Errorf("pop broadcasts = %q, %q", got[1].Name, got[2].Name)
	}
}

func TestBackForwardSuppressed(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/ext", Name: "ext", External: External(true)})

	// Seed history with entries the router cannot handle internally.
	h.Push("/no-route")
	h.Push("/ext")

	fired := 0
	if _, err := r.Register(func(*Location) { fired++ }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	h.Back()    // lands on /no-route: no match, suppressed
	h.Forward() // lands on /ext: external, suppressed

	if fired != 0 {
		t.Errorf("broadcasts = %d, want back/forward suppression", fired)
	}
	if h.Departed() != "" {
		t.Error("pop handling must never fall back to full navigation")
	}
}

func TestCloseDetachesFromHistory(t *testing.T) {
	r, h := newTestRouter(t)
	addRoutes(t, r, RouteSpec{Path: "/", Name: "home"}, RouteSpec{Path: "/a", Name: "a"})

	fired := 0
	if _, err := r.Register(func(*Location) { fired++ }); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := r.Navigate("/a"); err != nil {
		t.Fatalf("Navigate error: %v", err)
	}
	r.Close()
	h.Back()

	if fired != 1 {
		t.Errorf("broadcasts = %d, want no pop delivery after Close", fired)
	}
}
