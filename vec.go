// Package vec implements a generic growable array (vector).
// Typical usage: build a vector with Push, read it back with Get or
// iteration, and reuse the backing storage across rounds with Clear().
package vec

// Vector is a contiguous growable container of T with an explicit
// size/capacity split: len(data) slots are allocated, the first size of
// them are live. Not goroutine-safe; callers needing concurrent access
// must serialize externally.
type Vector[T any] struct {
	data []T // allocated slots; len(data) is the capacity
	size int // live prefix; slots beyond it are dead
}

// New creates an empty vector. No storage is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n zero-valued elements.
// Size and capacity both equal n. Panics if n is negative.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vec: negative size")
	}
	return &Vector[T]{data: make([]T, n), size: n}
}

// NewFill creates a vector of n copies of value.
// Size and capacity both equal n. Panics if n is negative.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Of creates a vector holding the given values in order.
// Capacity equals the number of values.
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.data, values)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Clear drops all elements but keeps the allocated storage for reuse.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

// Reserve grows the capacity to exactly newCap when it exceeds the
// current capacity, preserving all elements; smaller values are a no-op.
// Reserve never changes the size.
func (v *Vector[T]) Reserve(newCap int) {
	if newCap > len(v.data) {
		v.regrow(newCap)
	}
}

// Resize sets the size to n. Shrinking truncates in place. Growing
// within capacity zero-fills the new tail and leaves the capacity
// untouched. Growing past capacity reallocates to twice the requested
// size. Panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		panic("vec: negative size")
	case n <= v.size:
		clear(v.data[n:v.size])
	case n <= len(v.data):
		clear(v.data[v.size:n])
	default:
		v.regrow(n * 2)
	}
	v.size = n
}

// Clone returns a deep copy. The copy owns a fresh buffer sized to the
// live prefix, so mutating it never affects the original.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, v.size)
	copy(data, v.data[:v.size])
	return &Vector[T]{data: data, size: v.size}
}

// Move transfers buffer ownership into a new vector and resets the
// receiver to the empty state (size 0, capacity 0). The receiver stays
// valid and reusable.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{data: v.data, size: v.size}
	v.data = nil
	v.size = 0
	return moved
}

// Swap exchanges contents with other in constant time. No elements are
// copied; outstanding element pointers keep pointing into the buffer
// they were taken from.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// regrow moves the live prefix into a fresh buffer of newCap slots.
// Pointers previously obtained into the buffer are invalidated.
func (v *Vector[T]) regrow(newCap int) {
	data := make([]T, newCap)
	copy(data, v.data[:v.size])
	v.data = data
}
