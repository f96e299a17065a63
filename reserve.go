package vec

// ReserveRequest carries a capacity to pre-allocate. It exists to make
// NewReserved unmistakable next to NewSize: a sized constructor creates
// visible elements, a reserve request only storage.
type ReserveRequest struct {
	capacity int
}

// Reserve builds a ReserveRequest for n slots, consumed by NewReserved.
// Negative counts are treated as zero.
func Reserve(n int) ReserveRequest {
	if n < 0 {
		n = 0
	}
	return ReserveRequest{capacity: n}
}

// Capacity returns the requested slot count.
func (r ReserveRequest) Capacity() int {
	return r.capacity
}

// NewReserved creates an empty vector with storage for req.Capacity()
// elements already allocated. The size stays zero: pure pre-allocation,
// no visible elements.
func NewReserved[T any](req ReserveRequest) *Vector[T] {
	v := New[T]()
	v.Reserve(req.capacity)
	return v
}
