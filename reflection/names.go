package reflection

import (
	"reflect"
	"regexp"
)

// TypeText renders t the way dumpers report field types: named types as
// "pkg/path.Name" or "Name" depending on style, everything else in Go
// syntax with package-name qualifiers, e.g. "[17]float64", "[]fixtures.T".
func TypeText(t reflect.Type, style NameStyle) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	if style == NameBare {
		return t.Name()
	}

	return t.PkgPath() + "." + t.Name()
}

// QualifiedName is TypeText with NameQualified.
func QualifiedName(t reflect.Type) string {
	return TypeText(t, NameQualified)
}

var qualifierPattern = regexp.MustCompile(`[\w.~/-]*\.(\w+)`)

// CanonicalTypeName strips package qualifiers from every named type in
// name, so "struct-reflection/fixtures.BaseStruct", "fixtures.BaseStruct"
// and "BaseStruct" all canonicalize to "BaseStruct".
func CanonicalTypeName(name string) string {
	return qualifierPattern.ReplaceAllString(name, "$1")
}

// SameTypeName compares type text tolerating qualified and bare forms.
func SameTypeName(a, b string) bool {
	return a == b || CanonicalTypeName(a) == CanonicalTypeName(b)
}
