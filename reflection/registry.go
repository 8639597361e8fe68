package reflection

import (
	"fmt"
	"reflect"
	"sync"
)

type tableKey struct {
	t     reflect.Type
	mode  Mode
	style NameStyle
}

var (
	tablesMu sync.RWMutex
	tables   = map[tableKey][]FieldEntry{}
)

// Register installs a precomputed descriptor table for t. Generated code
// calls it from init. Registering a different table for the same key
// panics.
func Register(t reflect.Type, mode Mode, style NameStyle, entries []FieldEntry) {
	key := tableKey{t: indirect(t), mode: mode, style: style}
	stored := make([]FieldEntry, len(entries))
	copy(stored, entries)

	tablesMu.Lock()
	defer tablesMu.Unlock()

	if prev, ok := tables[key]; ok && !sameEntries(prev, stored) {
		panic(fmt.Sprintf("reflection: conflicting %s table registered for %s", mode, QualifiedName(key.t)))
	}

	tables[key] = stored
}

// Lookup returns the registered table for t, if any.
func Lookup(t reflect.Type, mode Mode, style NameStyle) ([]FieldEntry, bool) {
	tablesMu.RLock()
	defer tablesMu.RUnlock()

	entries, ok := tables[tableKey{t: indirect(t), mode: mode, style: style}]
	if !ok {
		return nil, false
	}

	out := make([]FieldEntry, len(entries))
	copy(out, entries)

	return out, true
}

func sameEntries(a, b []FieldEntry) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
