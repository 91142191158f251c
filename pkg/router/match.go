package router

import "strings"

// Match resolves a raw path against the registry and returns the first
// structural match in registration order, or nil when no route matches.
//
// The path splits into pathname, primary query, hash and hash query ("?"
// after "#"). Both query strings are parsed as one, with the hash query
// appended after the primary one so its keys win on collision; extracted
// path parameters are merged last and take precedence over both.
func (r *Router) Match(path string) *Match {
	pathname, search, hash, hashSearch := splitTarget(path)

	joined := search
	if hashSearch != "" {
		joined = joined + "&" + hashSearch
	}
	state := ParseQuery(joined)

	r.mu.Lock()
	routes := r.routes
	r.mu.Unlock()

	for _, rt := range routes {
		params, ok := rt.pattern.Match(pathname)
		if !ok {
			continue
		}
		for k, v := range params {
			state[k] = v
		}
		return &Match{
			Route:      rt,
			Pathname:   pathname,
			Search:     search,
			Hash:       hash,
			HashSearch: hashSearch,
			State:      state,
		}
	}
	return nil
}

// splitTarget breaks a path into its four components. The hash query only
// exists when a "?" follows the "#".
func splitTarget(path string) (pathname, search, hash, hashSearch string) {
	before, after, hasHash := strings.Cut(path, "#")
	pathname, search, _ = strings.Cut(before, "?")
	if hasHash {
		hash, hashSearch, _ = strings.Cut(after, "?")
	}
	return pathname, search, hash, hashSearch
}
