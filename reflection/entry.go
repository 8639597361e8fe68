package reflection

import "strings"

// FieldEntry describes one field visited during traversal.
// Entries are values and are never modified after construction.
type FieldEntry struct {
	fieldTypeName          string
	fieldName              string
	enclosingFieldTypeName string
	enclosingFieldName     string
	providingBaseClassName string
}

// NewFieldEntry builds an entry with no base provenance.
// Generated descriptor tables call it from init code.
func NewFieldEntry(fieldTypeName, fieldName, enclosingFieldTypeName, enclosingFieldName string) FieldEntry {
	return FieldEntry{
		fieldTypeName:          fieldTypeName,
		fieldName:              fieldName,
		enclosingFieldTypeName: enclosingFieldTypeName,
		enclosingFieldName:     enclosingFieldName,
	}
}

// WithProvidingBase returns a copy of e attributed to the given base type.
func (e FieldEntry) WithProvidingBase(baseTypeName string) FieldEntry {
	e.providingBaseClassName = baseTypeName
	return e
}

// FieldTypeName is the declared type text, e.g. "[17]float64".
func (e FieldEntry) FieldTypeName() string { return e.fieldTypeName }

// FieldName is the source name of the field.
func (e FieldEntry) FieldName() string { return e.fieldName }

// EnclosingFieldTypeName is the type whose declaration lexically contains
// the field. For promoted fields this is the embedding type, not the base.
func (e FieldEntry) EnclosingFieldTypeName() string { return e.enclosingFieldTypeName }

// EnclosingFieldName is the member one level up that holds the field,
// empty at the top level of the queried type.
func (e FieldEntry) EnclosingFieldName() string { return e.enclosingFieldName }

// ProvidingBaseClassName reports the embedded type the field is promoted
// from. ok is false for fields declared directly on the enclosing type.
func (e FieldEntry) ProvidingBaseClassName() (name string, ok bool) {
	return e.providingBaseClassName, e.providingBaseClassName != ""
}

// Equal reports whether both entries carry identical text in every position.
func (e FieldEntry) Equal(other FieldEntry) bool {
	return e == other
}

// String renders the entry as "Enclosing.field Type", with the enclosing
// field path and base provenance when present.
func (e FieldEntry) String() string {
	var sb strings.Builder

	sb.WriteString(e.enclosingFieldTypeName)
	if e.enclosingFieldName != "" {
		sb.WriteString("(")
		sb.WriteString(e.enclosingFieldName)
		sb.WriteString(")")
	}

	sb.WriteString(".")
	sb.WriteString(e.fieldName)
	sb.WriteString(" ")
	sb.WriteString(e.fieldTypeName)

	if base, ok := e.ProvidingBaseClassName(); ok {
		sb.WriteString(" [from ")
		sb.WriteString(base)
		sb.WriteString("]")
	}

	return sb.String()
}
