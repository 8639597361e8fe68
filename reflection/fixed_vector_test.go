package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedVector(t *testing.T) {
	v := NewFixedVector[int](2)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 2, v.Cap())

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))

	err := v.PushBack(3)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, v.Len(), "failed push must not change contents")

	assert.Equal(t, 1, v.At(0))
	assert.Equal(t, 2, v.At(1))
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.At(-1) })

	s := v.Slice()
	s[0] = 100
	assert.Equal(t, 1, v.At(0), "Slice must return a copy")
}

func TestFixedVector_All(t *testing.T) {
	v := NewFixedVector[string](3)
	require.NoError(t, v.PushBack("a"))
	require.NoError(t, v.PushBack("b"))
	require.NoError(t, v.PushBack("c"))

	var got []string
	for i, s := range v.All() {
		if i == 2 {
			break
		}
		got = append(got, s)
	}

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFixedVector_NegativeCapacity(t *testing.T) {
	v := NewFixedVector[int](-1)
	assert.Equal(t, 0, v.Cap())
	assert.ErrorIs(t, v.PushBack(1), ErrCapacityExceeded)
}
