package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled path pattern. It can test a concrete pathname and
// extract named parameters, and reverse-generate a path from parameters.
type Pattern interface {
	// Match tests pathname against the pattern. On success it returns the
	// extracted parameters (never nil) and true. Matching is exact: the
	// whole pathname must be consumed.
	Match(pathname string) (map[string]string, bool)

	// Stringify generates a concrete path by substituting params into the
	// pattern. It returns an error when a required parameter is missing.
	Stringify(params map[string]string) (string, error)
}

// Compiler compiles a path spec into a Pattern. It is the injection point
// for alternative pattern implementations.
type Compiler func(spec any) (Pattern, error)

// Compile compiles a path spec into a Pattern.
//
// Accepted specs:
//   - string: segment pattern with ":name" parameters and a trailing
//     "*name" catch-all (e.g. "/users/:id", "/files/*path")
//   - *regexp.Regexp: matched against the full pathname, named capture
//     groups become parameters
//   - Pattern: returned as-is
//
// Any other spec type is an error.
func Compile(spec any) (Pattern, error) {
	switch s := spec.(type) {
	case string:
		return compileString(s)
	case *regexp.Regexp:
		if s == nil {
			return nil, fmt.Errorf("pattern: nil regexp")
		}
		return &regexpPattern{re: s}, nil
	case Pattern:
		return s, nil
	default:
		return nil, fmt.Errorf("pattern: unsupported path spec type %T", spec)
	}
}

// segmentKind discriminates the three segment forms.
type segmentKind int

const (
	segStatic segmentKind = iota
	segParam
	segCatchAll
)

type segment struct {
	kind segmentKind

	// literal is the static text, or the parameter name for param and
	// catch-all segments.
	literal string
}

// stringPattern is a compiled segment pattern.
type stringPattern struct {
	source   string
	segments []segment
}

func compileString(source string) (*stringPattern, error) {
	if source == "" || !strings.HasPrefix(source, "/") {
		return nil, fmt.Errorf("pattern: path %q must start with /", source)
	}

	p := &stringPattern{source: source}
	parts := splitPath(source)
	for i, raw := range parts {
		switch {
		case strings.HasPrefix(raw, ":"):
			name := raw[1:]
			if name == "" {
				return nil, fmt.Errorf("pattern: unnamed parameter in %q", source)
			}
			p.segments = append(p.segments, segment{kind: segParam, literal: name})

		case strings.HasPrefix(raw, "*"):
			name := raw[1:]
			if name == "" {
				return nil, fmt.Errorf("pattern: unnamed catch-all in %q", source)
			}
			if i != len(parts)-1 {
				return nil, fmt.Errorf("pattern: catch-all must be the last segment in %q", source)
			}
			p.segments = append(p.segments, segment{kind: segCatchAll, literal: name})

		default:
			p.segments = append(p.segments, segment{kind: segStatic, literal: raw})
		}
	}
	return p, nil
}

// Match implements Pattern.
func (p *stringPattern) Match(pathname string) (map[string]string, bool) {
	parts := splitPath(pathname)
	params := make(map[string]string)

	for i, seg := range p.segments {
		switch seg.kind {
		case segStatic:
			if i >= len(parts) || parts[i] != seg.literal {
				return nil, false
			}

		case segParam:
			if i >= len(parts) || parts[i] == "" {
				return nil, false
			}
			params[seg.literal] = parts[i]

		case segCatchAll:
			// Consumes everything that remains, including nothing.
			params[seg.literal] = strings.Join(parts[i:], "/")
			return params, true
		}
	}

	// Exact match: no trailing segments allowed.
	if len(parts) != len(p.segments) {
		return nil, false
	}
	return params, true
}

// Stringify implements Pattern.
func (p *stringPattern) Stringify(params map[string]string) (string, error) {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		switch seg.kind {
		case segStatic:
			b.WriteString(seg.literal)
		case segParam, segCatchAll:
			v, ok := params[seg.literal]
			if !ok || (seg.kind == segParam && v == "") {
				return "", fmt.Errorf("pattern: missing parameter %q for %q", seg.literal, p.source)
			}
			b.WriteString(v)
		}
	}
	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

// regexpPattern matches the full pathname against a regular expression.
// Named capture groups become parameters. Reverse generation is not
// supported for regexp specs.
type regexpPattern struct {
	re *regexp.Regexp
}

// Match implements Pattern.
func (p *regexpPattern) Match(pathname string) (map[string]string, bool) {
	loc := p.re.FindStringSubmatchIndex(pathname)
	if loc == nil || loc[0] != 0 || loc[1] != len(pathname) {
		return nil, false
	}

	m := p.re.FindStringSubmatch(pathname)
	params := make(map[string]string)
	for i, name := range p.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = m[i]
	}
	return params, true
}

// Stringify implements Pattern.
func (p *regexpPattern) Stringify(params map[string]string) (string, error) {
	return "", fmt.Errorf("pattern: cannot stringify regexp pattern %q", p.re.String())
}

// splitPath splits a path into segments, dropping empty segments so that
// "/", "" and "//" all normalize consistently.
func splitPath(path string) []string {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}
