package reflection

import (
	"fmt"
	"reflect"
)

// Config holds configuration for a Reflector.
type Config struct {
	// Profile controls nested type name style and the dump ceiling.
	Profile Profile
	// UseRegistry answers queries from generated tables when one is
	// registered for the queried type and name style. Tables record entries,
	// not the Field calls a dump spends, so profiles with a ceiling always
	// dump.
	UseRegistry bool
}

// DefaultConfig returns the configuration used by the package-level queries.
func DefaultConfig() Config {
	return Config{
		Profile:     DefaultProfile,
		UseRegistry: true,
	}
}

// Reflector answers field queries. It keeps no state between queries.
type Reflector struct {
	config Config
}

// New creates a Reflector with the given configuration.
func New(config Config) *Reflector {
	return &Reflector{config: config}
}

// FieldCount returns the number of entries FieldInfo would produce for t.
func (r *Reflector) FieldCount(t reflect.Type, mode Mode) (int, error) {
	if entries, ok := r.lookup(t, mode); ok {
		return len(entries), nil
	}

	d, err := NewTypeDumper(t, r.config.Profile)
	if err != nil {
		return 0, err
	}

	return Count(d, mode)
}

// FieldInfo returns the entries of t in a vector of the given capacity.
func (r *Reflector) FieldInfo(t reflect.Type, mode Mode, capacity int) (FixedVector[FieldEntry], error) {
	if entries, ok := r.lookup(t, mode); ok {
		return fromTable(QualifiedName(indirect(t)), mode, entries, capacity)
	}

	d, err := NewTypeDumper(t, r.config.Profile)
	if err != nil {
		return FixedVector[FieldEntry]{}, err
	}

	return Collect(d, mode, capacity)
}

func (r *Reflector) lookup(t reflect.Type, mode Mode) ([]FieldEntry, bool) {
	if !r.config.UseRegistry || t == nil || r.config.Profile.Ceiling > 0 {
		return nil, false
	}

	return Lookup(t, mode, r.config.Profile.NestedTypeNames)
}

func fromTable(typeName string, mode Mode, entries []FieldEntry, capacity int) (FixedVector[FieldEntry], error) {
	out := NewFixedVector[FieldEntry](capacity)
	for _, e := range entries {
		if err := out.PushBack(e); err != nil {
			return FixedVector[FieldEntry]{}, &CapacityError{TypeName: typeName, Mode: mode, Capacity: capacity}
		}
	}

	return out, nil
}

var defaultReflector = New(DefaultConfig())

// FieldCountOf returns the number of fields visible on T. The count is
// shallow: fields of embedded bases are flattened in and counted, while
// aggregate members count as one field each and are not descended.
func FieldCountOf[T any]() (int, error) {
	return defaultReflector.FieldCount(reflect.TypeFor[T](), Shallow)
}

// FieldInfoOf returns the fields visible on T, at most DefaultCapacity.
// Like FieldCountOf it flattens embedded bases without descending members.
func FieldInfoOf[T any]() (FixedVector[FieldEntry], error) {
	return FieldInfoOfN[T](DefaultCapacity)
}

// FieldInfoOfN is FieldInfoOf with an explicit capacity.
func FieldInfoOfN[T any](capacity int) (FixedVector[FieldEntry], error) {
	return defaultReflector.FieldInfo(reflect.TypeFor[T](), Shallow, capacity)
}

// FieldCountOfValue is FieldCountOf for the dynamic type of instance.
// Field values are never read.
func FieldCountOfValue(instance any) (int, error) {
	return defaultReflector.FieldCount(reflect.TypeOf(instance), Shallow)
}

// FieldInfoOfValue is FieldInfoOfN for the dynamic type of instance.
func FieldInfoOfValue(instance any, capacity int) (FixedVector[FieldEntry], error) {
	return defaultReflector.FieldInfo(reflect.TypeOf(instance), Shallow, capacity)
}

// FieldCountOfExhaustive counts every field reachable from instance's type,
// descending into aggregate members and embedded bases.
func FieldCountOfExhaustive(instance any) (int, error) {
	return defaultReflector.FieldCount(reflect.TypeOf(instance), Exhaustive)
}

// FieldInfoOfExhaustive returns every field reachable from instance's type.
func FieldInfoOfExhaustive(instance any, capacity int) (FixedVector[FieldEntry], error) {
	return defaultReflector.FieldInfo(reflect.TypeOf(instance), Exhaustive, capacity)
}

// MustFieldCountOf is like FieldCountOf but panics on error.
func MustFieldCountOf[T any]() int {
	n, err := FieldCountOf[T]()
	if err != nil {
		panic(fmt.Errorf("reflection: %w", err))
	}

	return n
}

// MustFieldInfoOf is like FieldInfoOfN but panics on error. It is meant
// for package-level variables, where a failure should stop the program
// before it runs.
func MustFieldInfoOf[T any](capacity int) FixedVector[FieldEntry] {
	v, err := FieldInfoOfN[T](capacity)
	if err != nil {
		panic(fmt.Errorf("reflection: %w", err))
	}

	return v
}
