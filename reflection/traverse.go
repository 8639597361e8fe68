package reflection

import "fmt"

// Mode selects how far traversal descends.
type Mode int

const (
	// Shallow reports the fields visible on the queried type itself.
	// Embedded bases are flattened in place; members are not descended.
	Shallow Mode = iota // shallow
	// Exhaustive additionally descends into every aggregate member.
	Exhaustive // exhaustive
)

// ParseMode parses "shallow" or "exhaustive".
func ParseMode(s string) (Mode, error) {
	switch s {
	case Shallow.String():
		return Shallow, nil
	case Exhaustive.String():
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("unknown traversal mode %q", s)
	}
}

// collector is the Visitor driving one query.
type collector struct {
	rec     *reconstructor
	mode    Mode
	pending RawField
	emit    func(FieldEntry) error
}

func (c *collector) Field(f RawField) (bool, error) {
	c.pending = f

	if FrameKindOf(f) == FrameInheritedBase {
		return true, nil
	}

	// Dumpers that recurse on their own still reach here for nested
	// members; shallow queries ignore them.
	if c.mode == Shallow && c.rec.depth() > 0 {
		return false, nil
	}

	if err := c.emit(c.rec.entry(f)); err != nil {
		return false, err
	}

	return c.mode == Exhaustive, nil
}

func (c *collector) Enter() { c.rec.push(c.pending) }

func (c *collector) Leave() { c.rec.pop() }

func walk(d Dumper, mode Mode, emit func(FieldEntry) error) error {
	c := &collector{
		rec:  newReconstructor(d.TypeName()),
		mode: mode,
		emit: emit,
	}

	return d.Dump(c)
}

// Collect runs d and stores the resulting entries in a vector of the given
// capacity. When the entries do not fit, it fails with a *CapacityError.
func Collect(d Dumper, mode Mode, capacity int) (FixedVector[FieldEntry], error) {
	out := NewFixedVector[FieldEntry](capacity)

	err := walk(d, mode, func(e FieldEntry) error {
		if err := out.PushBack(e); err != nil {
			return &CapacityError{TypeName: d.TypeName(), Mode: mode, Capacity: capacity}
		}

		return nil
	})
	if err != nil {
		return FixedVector[FieldEntry]{}, err
	}

	return out, nil
}

// Count runs d and returns the number of entries Collect would store.
func Count(d Dumper, mode Mode) (int, error) {
	n := 0

	err := walk(d, mode, func(FieldEntry) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
