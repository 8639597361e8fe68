package reflection

import "fmt"

//go:generate go tool stringer -type=FrameKind,Mode,NameStyle -linecomment -output=kind_string.go

// RawField is one Field call of a structural dump.
//
// An embedded base is surfaced as a pseudo-field carrying the base type's
// fully-qualified name and no field name; its own fields follow as a nested
// dump. Backends that know the field is embedded may set Embedded instead.
type RawField struct {
	TypeName  string
	FieldName string
	Embedded  bool
}

// Visitor receives a structural dump.
//
// Field is called once per declared field in declaration order. When it
// returns descend=true and the field is decomposable, the dumper calls
// Enter, dumps the nested fields, and calls Leave before the next sibling.
// A non-nil error aborts the dump and is returned from Dump.
type Visitor interface {
	Field(f RawField) (descend bool, err error)
	Enter()
	Leave()
}

// Dumper produces the structural dump of a single root type.
type Dumper interface {
	// TypeName is the fully-qualified name of the root type.
	TypeName() string
	Dump(v Visitor) error
}

// NameStyle selects how named field types are rendered.
type NameStyle int

const (
	NameQualified NameStyle = iota // qualified
	NameBare                       // bare
)

// ParseNameStyle parses "qualified" or "bare".
func ParseNameStyle(s string) (NameStyle, error) {
	switch s {
	case NameQualified.String():
		return NameQualified, nil
	case NameBare.String():
		return NameBare, nil
	default:
		return 0, fmt.Errorf("unknown name style %q", s)
	}
}

// Profile captures backend behaviour that differs between environments.
type Profile struct {
	// Ceiling is the maximum number of cumulative Field calls per dump.
	// Zero means unbounded.
	Ceiling int
	// NestedTypeNames controls the text of named field types. Root type
	// names and base names are always fully qualified.
	NestedTypeNames NameStyle
}

var (
	// ProfileLegacy reproduces dump facilities that cap recursion and
	// report nested names fully qualified.
	ProfileLegacy = Profile{Ceiling: 193, NestedTypeNames: NameQualified}
	// ProfileTransitional caps recursion and reports bare nested names.
	ProfileTransitional = Profile{Ceiling: 193, NestedTypeNames: NameBare}
	// ProfileModern has no ceiling and reports bare nested names.
	ProfileModern = Profile{NestedTypeNames: NameBare}

	DefaultProfile = ProfileModern
)

// Budget counts Field calls of one dump against a profile ceiling.
type Budget struct {
	typeName string
	ceiling  int
	used     int
}

// Budget starts a fresh count for a dump of typeName.
func (p Profile) Budget(typeName string) *Budget {
	return &Budget{typeName: typeName, ceiling: p.Ceiling}
}

// Spend records one Field call. It fails once the ceiling is passed.
func (b *Budget) Spend() error {
	b.used++
	if b.ceiling > 0 && b.used > b.ceiling {
		return &CeilingError{TypeName: b.typeName, Ceiling: b.ceiling}
	}

	return nil
}

// Used returns the number of Field calls recorded so far.
func (b *Budget) Used() int { return b.used }
