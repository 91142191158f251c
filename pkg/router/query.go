package router

import (
	"net/url"
	"strings"
)

// ParseQuery parses a raw query string into a flat key/value mapping.
//
// Segments are split on "&", empty segments are discarded, and each
// segment splits on its first "=" into key and value. Both halves are
// percent-decoded ("+" is left alone, unlike form decoding). Keys that
// decode to the empty string are dropped; later duplicate keys overwrite
// earlier ones.
func ParseQuery(query string) map[string]string {
	state := make(map[string]string)
	for _, seg := range strings.Split(query, "&") {
		if seg == "" {
			continue
		}
		key, value, _ := strings.Cut(seg, "=")
		key = percentDecode(key)
		if key == "" {
			continue
		}
		state[key] = percentDecode(value)
	}
	return state
}

// percentDecode decodes %XX escapes, falling back to the raw text when the
// escape sequence is malformed.
func percentDecode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
