package vec

import "iter"

// All returns an iterator over index/value pairs of the live prefix in
// order. The sequence is restartable: ranging over it again replays from
// the first element.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Refs returns an iterator over index/pointer pairs for in-place edits.
// The pointers are positions into the buffer: any operation that
// reallocates or shifts it (growth, Insert, Erase, a reallocating
// Resize, Move, Swap) invalidates them.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}
