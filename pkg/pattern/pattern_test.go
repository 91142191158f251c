package pattern

import (
	"regexp"
	"testing"
)

func TestCompileStringMatch(t *testing.T) {
	tests := []struct {
		pattern  string
		pathname string
		want     map[string]string
		wantOK   bool
	}{
		{"/", "/", map[string]string{}, true},
		{"/users", "/users", map[string]string{}, true},
		{"/users", "/users/", map[string]string{}, true},
		{"/users", "/posts", nil, false},
		{"/users", "/users/42", nil, false},
		{"/users/:id", "/users/42", map[string]string{"id": "42"}, true},
		{"/users/:id", "/users", nil, false},
		{"/users/:id/posts/:post", "/users/7/posts/9", map[string]string{"id": "7", "post": "9"}, true},
		{"/files/*path", "/files/a/b/c", map[string]string{"path": "a/b/c"}, true},
		{"/files/*path", "/files", map[string]string{"path": ""}, true},
		{"/files/*path", "/docs/a", nil, false},
	}

	for _, tt := range tests {
		p, err := Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
		}

		params, ok := p.Match(tt.pathname)
		if ok != tt.wantOK {
			t.Errorf("Match(%q, %q) ok = %v, want %v", tt.pattern, tt.pathname, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if len(params) != len(tt.want) {
			t.Errorf("Match(%q, %q) params = %v, want %v", tt.pattern, tt.pathname, params, tt.want)
			continue
		}
		for k, v := range tt.want {
			if params[k] != v {
				t.Errorf("Match(%q, %q) params[%q] = %q, want %q", tt.pattern, tt.pathname, k, params[k], v)
			}
		}
	}
}

func TestCompileErrors(t *testing.T) {
	bad := []any{
		"",
		"users",
		"/users/:",
		"/files/*",
		"/files/*rest/more",
		42,
		nil,
	}
	for _, spec := range bad {
		if _, err := Compile(spec); err == nil {
			t.Errorf("Compile(%v) expected error", spec)
		}
	}
}

func TestStringify(t *testing.T) {
	p, err := Compile("/users/:id/files/*path")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	got, err := p.Stringify(map[string]string{"id": "42", "path": "a/b"})
	if err != nil {
		t.Fatalf("Stringify error: %v", err)
	}
	if got != "/users/42/files/a/b" {
		t.Errorf("Stringify = %q, want %q", got, "/users/42/files/a/b")
	}

	if _, err := p.Stringify(map[string]string{"id": "42"}); err == nil {
		t.Error("Stringify with missing param expected error")
	}
}

func TestStringifyRoot(t *testing.T) {
	p, err := Compile("/")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	got, err := p.Stringify(nil)
	if err != nil {
		t.Fatalf("Stringify error: %v", err)
	}
	if got != "/" {
		t.Errorf("Stringify = %q, want %q", got, "/")
	}
}

func TestCompileRegexp(t *testing.T) {
	p, err := Compile(regexp.MustCompile(`^/articles/(?P<year>\d{4})/(?P<slug>[a-z-]+)$`))
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	params, ok := p.Match("/articles/2024/hello-world")
	if !ok {
		t.Fatal("expected match")
	}
	if params["year"] != "2024" || params["slug"] != "hello-world" {
		t.Errorf("params = %v", params)
	}

	// Partial matches do not count.
	if _, ok := p.Match("/articles/2024/hello-world/extra"); ok {
		t.Error("expected no match for trailing segments")
	}

	if _, err := p.Stringify(map[string]string{"year": "2024"}); err == nil {
		t.Error("Stringify on regexp pattern expected error")
	}
}

func TestCompilePassthrough(t *testing.T) {
	p, err := Compile("/users/:id")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	p2, err := Compile(p)
	if err != nil {
		t.Fatalf("Compile(Pattern) error: %v", err)
	}
	if p2 != p {
		t.Error("Compile(Pattern) should return the same pattern")
	}
}
