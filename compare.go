package vec

import "cmp"

// Equal reports whether a and b hold the same number of elements with
// pairwise-equal values in index order. Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by element in the manner of
// cmp.Compare: -1 when a orders first, +1 when b does, 0 when equal.
// A vector that is a strict prefix of the other orders first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	for i := 0; i < a.size && i < b.size; i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}
