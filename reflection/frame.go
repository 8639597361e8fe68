package reflection

// FrameKind tags why a nested dump was entered.
type FrameKind int

const (
	// FrameNamedMember is entered through a named member field.
	FrameNamedMember FrameKind = iota
	// FrameInheritedBase is entered through an embedded base pseudo-field.
	FrameInheritedBase
)

// FrameKindOf classifies a raw field by the frame it would open.
func FrameKindOf(f RawField) FrameKind {
	if f.Embedded || f.FieldName == "" {
		return FrameInheritedBase
	}

	return FrameNamedMember
}

type frame struct {
	kind           FrameKind
	enclosingType  string
	enclosingField string
	providingBase  string
}

// reconstructor turns raw fields into entries, tracking the context of
// every open nested dump.
type reconstructor struct {
	frames []frame
}

func newReconstructor(rootTypeName string) *reconstructor {
	return &reconstructor{
		frames: []frame{{kind: FrameNamedMember, enclosingType: rootTypeName}},
	}
}

func (r *reconstructor) top() frame {
	return r.frames[len(r.frames)-1]
}

// entry builds the descriptor of a named field in the current frame.
func (r *reconstructor) entry(f RawField) FieldEntry {
	cur := r.top()

	return FieldEntry{
		fieldTypeName:          f.TypeName,
		fieldName:              f.FieldName,
		enclosingFieldTypeName: cur.enclosingType,
		enclosingFieldName:     cur.enclosingField,
		providingBaseClassName: cur.providingBase,
	}
}

// push opens the frame for the nested dump of f. A base frame keeps the
// enclosing context of its parent: promoted fields sit at the same level
// as the embedding type's own fields.
func (r *reconstructor) push(f RawField) {
	cur := r.top()

	switch FrameKindOf(f) {
	case FrameInheritedBase:
		r.frames = append(r.frames, frame{
			kind:           FrameInheritedBase,
			enclosingType:  cur.enclosingType,
			enclosingField: cur.enclosingField,
			providingBase:  f.TypeName,
		})
	case FrameNamedMember:
		r.frames = append(r.frames, frame{
			kind:           FrameNamedMember,
			enclosingType:  f.TypeName,
			enclosingField: f.FieldName,
		})
	}
}

func (r *reconstructor) pop() {
	if len(r.frames) > 1 {
		r.frames = r.frames[:len(r.frames)-1]
	}
}

// depth counts the named member frames above the root.
func (r *reconstructor) depth() int {
	n := 0
	for _, fr := range r.frames[1:] {
		if fr.kind == FrameNamedMember {
			n++
		}
	}

	return n
}
