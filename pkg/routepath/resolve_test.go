package routepath

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) error: %v", raw, err)
	}
	return u
}

func TestResolve(t *testing.T) {
	current := mustParse(t, "https://example.com/app/dashboard?tab=1")

	tests := []struct {
		ref  string
		want string
	}{
		{"/users/42", "/users/42"},
		{"settings", "/app/settings"},
		{"../profile", "/profile"},
		{"?q=go", "/app/dashboard?q=go"},
		{"/x?a=1#/y?a=2", "/x?a=1#/y?a=2"},
		{"https://example.com/inside", "/inside"},
		{"https://other.example.net/out", "https://other.example.net/out"},
		{"//cdn.example.net/asset", "https://cdn.example.net/asset"},
	}

	for _, tt := range tests {
		if got := Resolve(current, tt.ref); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestResolveNilCurrent(t *testing.T) {
	if got := Resolve(nil, "/users/42?a=1"); got != "/users/42?a=1" {
		t.Errorf("Resolve(nil, ...) = %q", got)
	}
	if got := Resolve(nil, "https://other.example.net/out"); got != "https://other.example.net/out" {
		t.Errorf("Resolve(nil, absolute) = %q", got)
	}
}

func TestFormatEmptyPath(t *testing.T) {
	if got := Format(mustParse(t, "https://example.com")); got != "/" {
		t.Errorf("Format = %q, want %q", got, "/")
	}
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/users", false},
		{"users", false},
		{"https://example.com/users", true},
		{"//example.com/users", true},
	}
	for _, tt := range tests {
		if got := IsAbsolute(tt.path); got != tt.want {
			t.Errorf("IsAbsolute(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
