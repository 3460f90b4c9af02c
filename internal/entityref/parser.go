// internal/entityref/parser.go
package entityref

import "strings"

// Parse converts reference text into a Ref. It never fails: input with an
// empty kind, namespace or name segment is taken whole as the name, with kind
// and namespace taken from ctx.
//
// A backslash escapes the following character, so `\:` and `\/` can appear
// inside a segment without acting as separators.
func Parse(input string, ctx Context) Ref {
	if ctx.DefaultNamespace == "" {
		ctx.DefaultNamespace = DefaultNamespace
	}
	whole := Ref{
		Kind:      ctx.DefaultKind,
		Namespace: ctx.DefaultNamespace,
		Name:      input,
	}
	if input == "" {
		return whole
	}

	ref := whole
	rest := input

	if i := indexUnescaped(rest, ':'); i >= 0 {
		kind := unescape(rest[:i])
		if kind == "" {
			return whole
		}
		ref.Kind = ParseKind(kind)
		ref.ExplicitKind = true
		rest = rest[i+1:]
	}

	if i := indexUnescaped(rest, '/'); i >= 0 {
		namespace := unescape(rest[:i])
		if namespace == "" {
			return whole
		}
		ref.Namespace = namespace
		ref.ExplicitNamespace = true
		rest = rest[i+1:]
	}

	name := unescape(rest)
	if name == "" {
		return whole
	}
	ref.Name = name
	return ref
}

// indexUnescaped returns the byte offset of the first sep in s that is not
// preceded by a backslash, or -1.
func indexUnescaped(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			return i
		}
	}
	return -1
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func escape(s string) string {
	if !strings.ContainsAny(s, `\:/`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', ':', '/':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
