package analyze

import (
	"go/types"

	"struct-reflection/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "struct-reflection/fixtures"
	Name    string // e.g., "ChildStruct"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind classifies a field type for traversal.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindBasic            // int, string, bool, etc.
	TypeKindStruct           // struct with only exported fields, descended
	TypeKindOpaque           // struct with unexported fields, a leaf
	TypeKindPointer          // pointer to another type
	TypeKindSlice            // slice of another type
	TypeKindArray            // array of another type
	TypeKindMap              // map type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindOpaque:
		return "opaque"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// Classify returns the kind of t after resolving aliases and named types.
func Classify(t types.Type) TypeKind {
	switch ut := types.Unalias(t).Underlying().(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		for i := range ut.NumFields() {
			if !ut.Field(i).Exported() {
				return TypeKindOpaque
			}
		}

		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	default:
		// Interfaces, channels, functions, etc.
		return TypeKindUnknown
	}
}

// IsAggregate reports whether t is descended by exhaustive traversal.
func IsAggregate(t types.Type) bool {
	return Classify(t) == TypeKindStruct
}
