package reflection

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStruct is returned when a query root is not a struct type.
	ErrNotStruct = errors.New("not a struct type")
	// ErrCapacityExceeded is returned when a type has more fields than the
	// requested result capacity.
	ErrCapacityExceeded = errors.New("field capacity exceeded")
	// ErrRecursionCeiling is returned when a dump visits more fields than
	// the profile ceiling allows. No partial result accompanies it.
	ErrRecursionCeiling = errors.New("recursion ceiling exceeded")
)

// CapacityError reports a result store that was too small for a type.
type CapacityError struct {
	TypeName string
	Mode     Mode
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s field info of %s does not fit in capacity %d",
		ErrCapacityExceeded, e.Mode, e.TypeName, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// CeilingError reports a dump aborted by the profile recursion ceiling.
type CeilingError struct {
	TypeName string
	Ceiling  int
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("%s: dumping %s visited more than %d fields",
		ErrRecursionCeiling, e.TypeName, e.Ceiling)
}

func (e *CeilingError) Unwrap() error { return ErrRecursionCeiling }
