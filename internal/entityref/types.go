// internal/entityref/types.go
package entityref

import "strings"

// Kind is the lowercase kind of a catalog entity. The eight well-known kinds
// are declared as constants; any other value is an unknown kind that keeps
// the text it was parsed from.
type Kind string

const (
	KindComponent Kind = "component"
	KindAPI       Kind = "api"
	KindResource  Kind = "resource"
	KindSystem    Kind = "system"
	KindDomain    Kind = "domain"
	KindGroup     Kind = "group"
	KindUser      Kind = "user"
	KindLocation  Kind = "location"
)

// DefaultNamespace is used when neither the reference nor its context names one.
const DefaultNamespace = "default"

var knownKinds = []Kind{
	KindComponent,
	KindAPI,
	KindResource,
	KindSystem,
	KindDomain,
	KindGroup,
	KindUser,
	KindLocation,
}

var kindTitles = map[Kind]string{
	KindComponent: "Component",
	KindAPI:       "API",
	KindResource:  "Resource",
	KindSystem:    "System",
	KindDomain:    "Domain",
	KindGroup:     "Group",
	KindUser:      "User",
	KindLocation:  "Location",
}

// ParseKind matches kind text case-insensitively against the well-known
// kinds. Any other text is kept as written.
func ParseKind(s string) Kind {
	if k := Kind(strings.ToLower(s)); k.Known() {
		return k
	}
	return Kind(s)
}

// KnownKinds returns the well-known kinds in their canonical order.
func KnownKinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// Known reports whether k is one of the well-known kinds.
func (k Kind) Known() bool {
	_, ok := kindTitles[k]
	return ok
}

// Title returns the display form of the kind, e.g. "API". Unknown kinds are
// returned as-is.
func (k Kind) Title() string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Context supplies the values used for segments a reference leaves out.
type Context struct {
	DefaultKind      Kind
	DefaultNamespace string
}

// Ref is a parsed entity reference.
type Ref struct {
	Kind      Kind
	Namespace string
	Name      string

	// ExplicitKind and ExplicitNamespace record whether the segment was
	// present in the source text. Presentation only.
	ExplicitKind      bool
	ExplicitNamespace bool
}

// Key is the identity of a reference: kind, namespace and name.
type Key struct {
	Kind      Kind
	Namespace string
	Name      string
}

// Key strips the presentation flags from r.
func (r Ref) Key() Key {
	return Key{Kind: r.Kind, Namespace: r.Namespace, Name: r.Name}
}

// Equal compares kind, namespace and name only.
func (r Ref) Equal(other Ref) bool {
	return r.Key() == other.Key()
}

// IsZero reports whether r carries no name, which only happens for empty input.
func (r Ref) IsZero() bool {
	return r.Name == ""
}
