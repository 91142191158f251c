// Package routepath normalizes navigation targets against a current
// location.
//
// Resolve implements the path-resolution contract the router relies on:
// relative references resolve against the current location, same-host
// results collapse to pathname+search+hash, and cross-host results stay
// absolute. A resolved path that still carries a host is the signal for an
// external destination.
package routepath

import (
	"net/url"
	"strings"
)

// Resolve normalizes ref against the current location.
//
// Rules:
//   - Relative references ("about", "../x", "?q=1", "#top") resolve
//     against current per RFC 3986 reference resolution.
//   - If the resolved URL points at the same host as current, the result
//     is the in-site form: pathname + search + hash.
//   - If the resolved URL points at a different host, the full absolute
//     URL string is returned unchanged, signalling an external target.
//
// When current is nil or ref cannot be parsed as a URL reference, ref is
// returned as-is.
func Resolve(current *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	if current == nil {
		if parsed.Host == "" {
			return Format(parsed)
		}
		return parsed.String()
	}

	resolved := current.ResolveReference(parsed)
	if resolved.Host != current.Host {
		return resolved.String()
	}
	return Format(resolved)
}

// Format renders a URL as pathname+search+hash, the in-site path form the
// router matches against.
func Format(u *url.URL) string {
	var b strings.Builder
	if u.Path == "" {
		b.WriteByte('/')
	} else {
		b.WriteString(u.Path)
	}
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.EscapedFragment())
	}
	return b.String()
}

// IsAbsolute reports whether path carries a scheme or host, meaning it
// names a destination outside the current site.
func IsAbsolute(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return u.Scheme != "" || u.Host != ""
}
