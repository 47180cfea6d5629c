// File: core/deque/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Logical-index cursor over a deque, plus range-over-func views.

package deque

import "iter"

// Iterator is a cursor over logical indices [0, Len()). It holds a
// non-owning reference to its deque and a logical index, so it survives
// any physical wraparound of the store. Structural mutation of the deque
// (growth, insert, remove, pop) invalidates every outstanding iterator;
// re-obtain cursors after mutating.
//
// Iterator values are comparable: two are equal when they reference the
// same deque and the same logical index.
type Iterator[T any] struct {
	d   *Deque[T]
	idx int
}

// Begin returns a cursor at logical index 0.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d}
}

// End returns the one-past-last cursor at logical index Len().
// It must not be dereferenced.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{d: d, idx: d.size}
}

// Value returns the element under the cursor. Requires a valid position.
func (it Iterator[T]) Value() T {
	return it.d.At(it.idx)
}

// Ptr returns a pointer to the element under the cursor, valid until the
// next structural mutation. Requires a valid position.
func (it Iterator[T]) Ptr() *T {
	return it.d.Ptr(it.idx)
}

// Next advances the cursor one logical index toward End.
func (it *Iterator[T]) Next() {
	it.idx++
}

// Prev moves the cursor one logical index toward Begin.
func (it *Iterator[T]) Prev() {
	it.idx--
}

// Index returns the cursor's logical index.
func (it Iterator[T]) Index() int {
	return it.idx
}

// Valid reports whether the cursor is dereferenceable.
func (it Iterator[T]) Valid() bool {
	return it.idx >= 0 && it.idx < it.d.size
}

// Equal reports same-deque identity and same logical index; it matches
// the == operator on Iterator values.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.d == other.d && it.idx == other.idx
}

// All returns a front-to-back view of (logical index, element) pairs for
// use with range. The deque must not be structurally mutated during
// iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, d.At(i)) {
				return
			}
		}
	}
}

// Backward returns a back-to-front view of (logical index, element) pairs
// for use with range. Same mutation rule as All.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, d.At(i)) {
				return
			}
		}
	}
}
