package reflection

import (
	"fmt"
	"reflect"
	"slices"
)

// TypeDumper dumps a struct layout through package reflect.
// Only the type is consulted; no value is ever read.
type TypeDumper struct {
	root    reflect.Type
	name    string
	profile Profile
}

// NewTypeDumper returns a dumper for t. Pointer types are dereferenced.
// The root may be any struct, including one with unexported fields.
func NewTypeDumper(t reflect.Type, profile Profile) (*TypeDumper, error) {
	t = indirect(t)
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotStruct)
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	return &TypeDumper{
		root:    t,
		name:    QualifiedName(t),
		profile: profile,
	}, nil
}

func (d *TypeDumper) TypeName() string { return d.name }

func (d *TypeDumper) Dump(v Visitor) error {
	s := &typeDump{
		visitor: v,
		style:   d.profile.NestedTypeNames,
		budget:  d.profile.Budget(d.name),
	}

	return s.fields(d.root, []reflect.Type{d.root})
}

type typeDump struct {
	visitor Visitor
	style   NameStyle
	budget  *Budget
}

// fields dumps the direct fields of st. chain holds the struct types
// currently open, so a type embedding a pointer to itself terminates.
func (s *typeDump) fields(st reflect.Type, chain []reflect.Type) error {
	for i := range st.NumField() {
		raw, nested := s.classify(st.Field(i), chain)

		if err := s.budget.Spend(); err != nil {
			return err
		}

		descend, err := s.visitor.Field(raw)
		if err != nil {
			return err
		}

		if !descend || nested == nil {
			continue
		}

		s.visitor.Enter()
		err = s.fields(nested, append(chain, nested))
		s.visitor.Leave()

		if err != nil {
			return err
		}
	}

	return nil
}

// classify returns the raw field for sf and, when sf can be dumped
// further, the struct type to descend into.
func (s *typeDump) classify(sf reflect.StructField, chain []reflect.Type) (RawField, reflect.Type) {
	if sf.Anonymous {
		base := indirect(sf.Type)
		if IsAggregate(base) && !slices.Contains(chain, base) {
			return RawField{TypeName: QualifiedName(base), Embedded: true}, base
		}
	}

	raw := RawField{TypeName: TypeText(sf.Type, s.style), FieldName: sf.Name}
	if IsAggregate(sf.Type) {
		return raw, sf.Type
	}

	return raw, nil
}

// IsAggregate reports whether t is a struct whose fields are all exported.
// Anything else is a leaf for exhaustive traversal.
func IsAggregate(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}

	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return false
		}
	}

	return true
}

func indirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}
