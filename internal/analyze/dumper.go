package analyze

import (
	"fmt"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"struct-reflection/reflection"
)

// StructDumper dumps a struct layout from go/types. It reports the same
// type text as reflection.TypeDumper for the same layout, so tables built
// here can stand in for reflect-based queries.
type StructDumper struct {
	root    *types.Struct
	key     types.Type
	name    string
	profile reflection.Profile
}

// NewStructDumper returns a dumper for t. Pointer types are dereferenced.
func NewStructDumper(t types.Type, profile reflection.Profile) (*StructDumper, error) {
	t = indirect(t)

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", reflection.ErrNotStruct, types.TypeString(t, packageName))
	}

	return &StructDumper{
		root:    st,
		key:     t,
		name:    TypeText(t, reflection.NameQualified),
		profile: profile,
	}, nil
}

func (d *StructDumper) TypeName() string { return d.name }

func (d *StructDumper) Dump(v reflection.Visitor) error {
	s := &structDump{
		visitor: v,
		style:   d.profile.NestedTypeNames,
		budget:  d.profile.Budget(d.name),
	}

	return s.fields(d.root, []types.Type{d.key})
}

type structDump struct {
	visitor reflection.Visitor
	style   reflection.NameStyle
	budget  *reflection.Budget
}

func (s *structDump) fields(st *types.Struct, chain []types.Type) error {
	for i := range st.NumFields() {
		raw, nestedType, nested := s.classify(st.Field(i), chain)

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
		err = s.fields(nested, append(chain, nestedType))
		s.visitor.Leave()

		if err != nil {
			return err
		}
	}

	return nil
}

func (s *structDump) classify(f *types.Var, chain []types.Type) (reflection.RawField, types.Type, *types.Struct) {
	if f.Embedded() {
		base := indirect(f.Type())
		if IsAggregate(base) && !onChain(chain, base) {
			raw := reflection.RawField{TypeName: TypeText(base, reflection.NameQualified), Embedded: true}
			return raw, base, base.Underlying().(*types.Struct)
		}
	}

	raw := reflection.RawField{TypeName: TypeText(f.Type(), s.style), FieldName: f.Name()}
	if IsAggregate(f.Type()) {
		t := types.Unalias(f.Type())
		return raw, t, t.Underlying().(*types.Struct)
	}

	return raw, nil, nil
}

func onChain(chain []types.Type, t types.Type) bool {
	return slices.ContainsFunc(chain, func(c types.Type) bool {
		return types.Identical(c, t)
	})
}

// TypeText renders t the way reflection.TypeText renders the equivalent
// reflect.Type: named types as "pkg/path.Name" or "Name", everything else
// in Go syntax with package-name qualifiers. byte and rune are spelled
// uint8 and int32, and type arguments are comma-joined without spaces and
// qualified by full package path, as in the runtime type names.
func TypeText(t types.Type, style reflection.NameStyle) string {
	var b strings.Builder

	if named, ok := types.Unalias(t).(*types.Named); ok && named.Obj().Pkg() != nil {
		if style == reflection.NameQualified {
			b.WriteString(named.Obj().Pkg().Path() + ".")
		}

		writeNamed(&b, named, nil)

		return b.String()
	}

	writeType(&b, t, packageName)

	return b.String()
}

// writeType writes t in reflect's String spelling. qualify names the
// package of named types; it is package name outside type arguments and
// full path inside them.
func writeType(b *strings.Builder, t types.Type, qualify types.Qualifier) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			b.WriteString("unsafe.Pointer")
			return
		}

		b.WriteString(types.Typ[tt.Kind()].Name())
	case *types.Named:
		writeNamed(b, tt, qualify)
	case *types.Pointer:
		b.WriteString("*")
		writeType(b, tt.Elem(), qualify)
	case *types.Slice:
		b.WriteString("[]")
		writeType(b, tt.Elem(), qualify)
	case *types.Array:
		b.WriteString("[" + strconv.FormatInt(tt.Len(), 10) + "]")
		writeType(b, tt.Elem(), qualify)
	case *types.Map:
		b.WriteString("map[")
		writeType(b, tt.Key(), qualify)
		b.WriteString("]")
		writeType(b, tt.Elem(), qualify)
	case *types.Chan:
		switch tt.Dir() {
		case types.SendOnly:
			b.WriteString("chan<- ")
		case types.RecvOnly:
			b.WriteString("<-chan ")
		default:
			b.WriteString("chan ")
		}

		writeType(b, tt.Elem(), qualify)
	case *types.Interface:
		if tt.Empty() {
			b.WriteString("interface {}")
			return
		}

		b.WriteString(types.TypeString(tt, qualify))
	default:
		// Signatures and struct literals keep go/types spelling.
		b.WriteString(types.TypeString(tt, qualify))
	}
}

// writeNamed writes the name of t with its type arguments. A nil qualify
// writes the bare name.
func writeNamed(b *strings.Builder, t *types.Named, qualify types.Qualifier) {
	obj := t.Obj()
	if obj.Pkg() != nil && qualify != nil {
		b.WriteString(qualify(obj.Pkg()) + ".")
	}

	b.WriteString(obj.Name())

	args := t.TypeArgs()
	if args.Len() == 0 {
		return
	}

	b.WriteString("[")

	for i := range args.Len() {
		if i > 0 {
			b.WriteString(",")
		}

		writeType(b, args.At(i), packagePath)
	}

	b.WriteString("]")
}

func packagePath(p *types.Package) string {
	return p.Path()
}

func packageName(p *types.Package) string {
	return p.Name()
}

func indirect(t types.Type) types.Type {
	t = types.Unalias(t)
	if p, ok := t.Underlying().(*types.Pointer); ok {
		if _, named := t.(*types.Named); !named {
			return types.Unalias(p.Elem())
		}
	}

	return t
}
