package reflection

import (
	"fmt"
	"iter"
)

// DefaultCapacity bounds FieldInfoOf results when no capacity is given.
const DefaultCapacity = 16

// FixedVector is an ordered sequence with a capacity fixed at construction.
// Appending past the capacity fails; elements are never dropped.
type FixedVector[T any] struct {
	items    []T
	capacity int
}

// NewFixedVector returns an empty vector holding at most capacity elements.
func NewFixedVector[T any](capacity int) FixedVector[T] {
	if capacity < 0 {
		capacity = 0
	}

	return FixedVector[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// PushBack appends v, or returns an error wrapping ErrCapacityExceeded when
// the vector is full.
func (v *FixedVector[T]) PushBack(item T) error {
	if len(v.items) >= v.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, v.capacity)
	}

	v.items = append(v.items, item)

	return nil
}

// Len returns the number of stored elements.
func (v FixedVector[T]) Len() int { return len(v.items) }

// Cap returns the fixed capacity.
func (v FixedVector[T]) Cap() int { return v.capacity }

// At returns the element at index i. It panics when i is out of range.
func (v FixedVector[T]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("reflection: index %d out of range [0:%d]", i, len(v.items)))
	}

	return v.items[i]
}

// All iterates over index/element pairs in order.
func (v FixedVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored elements.
func (v FixedVector[T]) Slice() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)

	return out
}
