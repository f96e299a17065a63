package vec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by At and AtRef for indexes past the live prefix.
var ErrOutOfRange = errors.New("vec: index out of range")

// Get returns the element at index i.
// Panics if i is outside [0, Len()); use At for a checked read.
func (v *Vector[T]) Get(i int) T {
	return v.data[:v.size][i]
}

// Set stores value at index i. Panics if i is outside [0, Len()).
func (v *Vector[T]) Set(i int, value T) {
	v.data[:v.size][i] = value
}

// Ref returns a pointer to the element at index i, valid until the next
// operation that reallocates or shifts the buffer. Panics if i is
// outside [0, Len()).
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[:v.size][i]
}

// At returns the element at index i, or an error wrapping ErrOutOfRange
// when i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.data[i], nil
}

// AtRef returns a pointer to the element at index i, or an error
// wrapping ErrOutOfRange when i is outside [0, Len()). The pointer obeys
// the same invalidation rules as Ref.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.data[i], nil
}

func outOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, size)
}
