// Package vec implements a generic dynamic array (vector) for Go.
//
// # Overview
//
// A vector owns a single contiguous heap buffer and tracks a logical
// size separately from the allocated capacity. Appends past the current
// capacity reallocate with a doubling policy, so building a vector one
// element at a time costs amortized O(1) per element. This is useful
// for:
//
//   - Accumulating results of unknown length
//   - Index-stable collections with random access
//   - Reusing one allocation across many fill/clear rounds
//   - Porting code written against a classic vector API
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	v.Clear() // size 0, storage retained for reuse
//
// To pre-allocate storage without creating visible elements, construct
// from a reserve request:
//
//	v := vec.NewReserved[int](vec.Reserve(1024))
//	// v.Len() == 0, v.Cap() == 1024
//
// # Growth Policy
//
// Push and Insert grow a full vector to max(1, 2*cap). Resize past the
// capacity reallocates to twice the requested size. Reserve reallocates
// to exactly the requested capacity and never pads. Capacity never
// shrinks; Clear, Pop, Erase and a shrinking Resize all retain storage.
//
// # Element Access
//
// Get, Set and Ref are the unchecked accessors: indexing past the live
// prefix panics, exactly like indexing a slice out of range. At and
// AtRef are the checked forms and report ErrOutOfRange instead. For a
// valid index the two forms always agree.
//
// # Pointer Invalidation
//
// Ref, AtRef, Insert and Refs hand out pointers into the backing buffer.
// Any operation that reallocates or shifts the buffer — growth, Insert,
// Erase, a reallocating Resize, Move, Swap — invalidates them. Positions
// held as plain indexes stay meaningful across reallocation.
//
// # Thread Safety
//
// Vector performs no internal locking and is not safe for concurrent
// mutation. Callers that share a vector across goroutines must
// serialize access externally.
//
// # Important Notes
//
//   - The zero value of Vector is an empty vector ready for use
//   - Pop on an empty vector and Erase with an out-of-range position
//     are deliberate no-ops, not errors
//   - Slots between Len() and Cap() are allocated but dead; they are
//     zeroed so the buffer never pins unreachable values
//   - Equal and Compare are package functions because they constrain
//     the element type (comparable, cmp.Ordered) beyond what the
//     container itself requires
package vec
