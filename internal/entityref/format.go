// internal/entityref/format.go
package entityref

import (
	"strings"
)

// Format serializes r into its canonical, fully explicit form
// `kind:namespace/name`. Separator characters inside a segment are escaped,
// so Parse(Format(r)) is equal to r for any Ref produced by Parse.
func Format(r Ref) string {
	var sb strings.Builder
	if r.Kind != "" {
		sb.WriteString(escape(string(r.Kind)))
		sb.WriteByte(':')
	}
	sb.WriteString(escape(r.Namespace))
	sb.WriteByte('/')
	sb.WriteString(escape(r.Name))
	return sb.String()
}

// String implements fmt.Stringer using the canonical form.
func (r Ref) String() string {
	return Format(r)
}

// Display renders r for people: every segment is shown, and the ones that
// were inferred are wrapped in brackets, e.g. `[component]:[default]/my-service`.
func Display(r Ref) string {
	var sb strings.Builder
	if r.Kind != "" {
		writeSegment(&sb, string(r.Kind), r.ExplicitKind)
		sb.WriteByte(':')
	}
	writeSegment(&sb, r.Namespace, r.ExplicitNamespace)
	sb.WriteByte('/')
	sb.WriteString(r.Name)
	return sb.String()
}

func writeSegment(sb *strings.Builder, s string, explicit bool) {
	if explicit {
		sb.WriteString(s)
		return
	}
	sb.WriteByte('[')
	sb.WriteString(s)
	sb.WriteByte(']')
}
