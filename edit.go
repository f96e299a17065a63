package vec

// Push appends value, doubling the capacity when full (capacity 0 grows
// to 1). Amortized O(1).
func (v *Vector[T]) Push(value T) {
	if v.size == len(v.data) {
		v.regrow(doubled(len(v.data)))
	}
	v.data[v.size] = value
	v.size++
}

// Pop removes the last element. Popping an empty vector is a no-op.
func (v *Vector[T]) Pop() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero T
	v.data[v.size] = zero
}

// Insert places value at position i, shifting the elements at and after
// i one slot toward the end. i must lie in [0, Len()]; inserting at
// Len() is an append. A full vector grows first, with the same doubling
// policy as Push. Returns a pointer to the inserted element, valid until
// the next reallocating or shifting operation.
func (v *Vector[T]) Insert(i int, value T) *T {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if v.size == len(v.data) {
		v.regrow(doubled(len(v.data)))
	}
	copy(v.data[i+1:v.size+1], v.data[i:v.size])
	v.data[i] = value
	v.size++
	return &v.data[i]
}

// Erase removes the element at position i, shifting later elements one
// slot toward the beginning, and returns the position of the element
// that followed it (Len() when the last element was removed). Positions
// outside [0, Len()) leave the vector unmodified and return the position
// clamped to [0, Len()].
func (v *Vector[T]) Erase(i int) int {
	if i < 0 {
		return 0
	}
	if i >= v.size {
		return v.size
	}
	copy(v.data[i:v.size-1], v.data[i+1:v.size])
	v.size--
	var zero T
	v.data[v.size] = zero
	return i
}

// doubled is the growth policy shared by Push and Insert.
func doubled(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
