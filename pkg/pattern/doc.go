// Package pattern compiles declarative path specs into matchers.
//
// A compiled Pattern tests concrete pathnames, extracts named parameters,
// and reverse-generates paths from a parameter map. Two spec forms are
// supported:
//
//	pattern.Compile("/users/:id")                  // segment pattern
//	pattern.Compile(regexp.MustCompile(`/v\d+`))   // regular expression
//
// Segment patterns use ":name" for single-segment parameters and a
// trailing "*name" catch-all that captures the remainder of the path.
// Matching is exact; there is no prefix matching.
//
// The router consumes this package through the Compiler function type, so
// applications can swap in their own pattern implementation.
package pattern
