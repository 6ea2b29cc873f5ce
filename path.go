package routedoc

import (
	"fmt"
	"strings"
)

// PathTemplate is a parsed route path: literal text interleaved with named
// parameters. Parameter names are unique within a template.
type PathTemplate struct {
	pieces []pathPiece
}

type pathPiece struct {
	literal string
	param   string
	pattern string
}

// String renders the template with brace parameters, e.g. "/users/{id}".
func (t PathTemplate) String() string {
	var b strings.Builder
	for _, p := range t.pieces {
		if p.param == "" {
			b.WriteString(p.literal)
			continue
		}
		b.WriteByte('{')
		b.WriteString(p.param)
		b.WriteByte('}')
	}
	return b.String()
}

// Params returns the parameter names in the order they occur.
func (t PathTemplate) Params() []string {
	var names []string
	for _, p := range t.pieces {
		if p.param != "" {
			names = append(names, p.param)
		}
	}
	return names
}

// Pattern returns the regular expression constraining parameter name, or ""
// when it has none.
func (t PathTemplate) Pattern(name string) string {
	for _, p := range t.pieces {
		if p.param == name {
			return p.pattern
		}
	}
	return ""
}

// ParsePath parses a path in colon parameter syntax. A parameter name is a
// run of letters, digits and underscores; it may be followed by a regular
// expression in parentheses and an optional "?" modifier:
//
//	/:action/:id/       -> /{action}/{id}/
//	/files/:id(\d+)     -> /files/{id} with pattern \d+
//
// Empty or duplicate names, stray braces and unbalanced parentheses wrap
// [ErrInvalidPath].
func ParsePath(raw string) (PathTemplate, error) {
	var (
		t    PathTemplate
		lit  strings.Builder
		seen = map[string]bool{}
	)
	flush := func() {
		if lit.Len() > 0 {
			t.pieces = append(t.pieces, pathPiece{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		switch c := raw[i]; c {
		case '{', '}', '(', ')':
			return PathTemplate{}, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidPath, c, i, raw)
		case ':':
			j := i + 1
			for j < len(raw) && isParamChar(raw[j]) {
				j++
			}
			name := raw[i+1 : j]
			if name == "" {
				return PathTemplate{}, fmt.Errorf("%w: empty parameter name at offset %d in %q", ErrInvalidPath, i, raw)
			}
			if seen[name] {
				return PathTemplate{}, fmt.Errorf("%w: parameter %q appears more than once in %q", ErrInvalidPath, name, raw)
			}
			seen[name] = true

			var pattern string
			if j < len(raw) && raw[j] == '(' {
				end, err := closingParen(raw, j)
				if err != nil {
					return PathTemplate{}, err
				}
				pattern = raw[j+1 : end]
				j = end + 1
			}
			if j < len(raw) && raw[j] == '?' {
				j++
			}

			flush()
			t.pieces = append(t.pieces, pathPiece{param: name, pattern: pattern})
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return t, nil
}

func isParamChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// closingParen returns the index of the parenthesis closing the one at open.
func closingParen(s string, open int) (int, error) {
	depth := 0
	for k := open; k < len(s); k++ {
		switch s[k] {
		case '\\':
			k++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unbalanced parenthesis at offset %d in %q", ErrInvalidPath, open, s)
}

// JoinPath joins a router prefix and a route path with exactly one slash at
// the join point. An empty prefix returns path unchanged.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/")
}
