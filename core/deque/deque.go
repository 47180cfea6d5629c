// File: core/deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Resizable ring-backed deque with exact caller-specified capacities.
// The logical window [0, size) maps to physical slots (head+i) % cap;
// tail always equals (head+size) % cap and is maintained incrementally.

package deque

import (
	"github.com/momentics/ringdeque/api"
	"github.com/momentics/ringdeque/control"
)

// Ensure compile-time interface compliance.
var _ api.Container[any] = (*Deque[any])(nil)

// Deque is a generic double-ended queue over a circular backing store.
//
// The zero value is usable and equivalent to New: empty, zero capacity,
// no allocation. Not safe for concurrent use.
type Deque[T any] struct {
	store []T
	head  int
	tail  int
	size  int
	grows uint64
	peak  int
}

// New returns an empty deque with no backing store.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// NewWithCapacity returns an empty deque whose store holds exactly
// capacity elements before the first growth.
func NewWithCapacity[T any](capacity int) *Deque[T] {
	return &Deque[T]{store: make([]T, capacity)}
}

// NewFilled returns a deque of exactly capacity slots, every one holding
// val, with size == capacity. This performs capacity value copies; element
// types sharing resources through copies should not be filled this way.
//
// The full ring has tail == head == 0, keeping tail == (head+size) % cap.
func NewFilled[T any](capacity int, val T) *Deque[T] {
	d := &Deque[T]{store: make([]T, capacity), size: capacity, peak: capacity}
	for i := range d.store {
		d.store[i] = val
	}
	return d
}

// Clone returns an independent deque holding the same logical sequence,
// tightly sized to the current size with head reset to 0.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{size: d.size, peak: d.size}
	if d.size > 0 {
		c.store = make([]T, d.size)
		for i := 0; i < d.size; i++ {
			c.store[i] = d.At(i)
		}
	}
	return c
}

// Move transfers ownership of the backing store to the returned deque.
// The receiver is reset to the empty zero-capacity state and remains
// valid for reuse.
func (d *Deque[T]) Move() *Deque[T] {
	m := &Deque[T]{store: d.store, head: d.head, tail: d.tail, size: d.size, grows: d.grows, peak: d.peak}
	*d = Deque[T]{}
	return m
}

// PushFront inserts v before the first element, growing if full.
func (d *Deque[T]) PushFront(v T) {
	if d.size == len(d.store) {
		d.grow()
	}
	if d.head == 0 {
		d.head = len(d.store) - 1
	} else {
		d.head--
	}
	d.store[d.head] = v
	d.size++
	d.notePeak()
}

// PushBack inserts v after the last element, growing if full.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.store) {
		d.grow()
	}
	d.store[d.tail] = v
	d.tail = (d.tail + 1) % len(d.store)
	d.size++
	d.notePeak()
}

// PopFront removes the first element without returning it; read it through
// Front beforehand. Requires a non-empty deque.
func (d *Deque[T]) PopFront() {
	d.head = (d.head + 1) % len(d.store)
	d.size--
}

// PopBack removes the last element without returning it; read it through
// Back beforehand. Requires a non-empty deque.
func (d *Deque[T]) PopBack() {
	if d.tail == 0 {
		d.tail = len(d.store) - 1
	} else {
		d.tail--
	}
	d.size--
}

// Front returns the first element. Requires a non-empty deque.
func (d *Deque[T]) Front() T {
	return d.store[d.head]
}

// FrontPtr returns a pointer to the first element, valid until the next
// structural mutation. Requires a non-empty deque.
func (d *Deque[T]) FrontPtr() *T {
	return &d.store[d.head]
}

// Back returns the last element. Requires a non-empty deque.
func (d *Deque[T]) Back() T {
	return *d.BackPtr()
}

// BackPtr returns a pointer to the last element, valid until the next
// structural mutation. Requires a non-empty deque.
func (d *Deque[T]) BackPtr() *T {
	if d.tail == 0 {
		return &d.store[len(d.store)-1]
	}
	return &d.store[d.tail-1]
}

// At returns the element at logical index idx. No bounds validation is
// performed; requires 0 <= idx < Len().
func (d *Deque[T]) At(idx int) T {
	return d.store[(d.head+idx)%len(d.store)]
}

// Ptr returns a pointer to the element at logical index idx, valid until
// the next structural mutation. No bounds validation; requires
// 0 <= idx < Len().
func (d *Deque[T]) Ptr(idx int) *T {
	return &d.store[(d.head+idx)%len(d.store)]
}

// InsertAt places v at logical index pos, shifting elements at [pos, size)
// one step toward the back. Requires 0 <= pos <= Len().
func (d *Deque[T]) InsertAt(v T, pos int) {
	if d.size == len(d.store) {
		d.grow()
	}
	for i := d.size; i > pos; i-- {
		d.store[(d.head+i)%len(d.store)] = d.At(i - 1)
	}
	d.store[(d.head+pos)%len(d.store)] = v
	d.tail = (d.tail + 1) % len(d.store)
	d.size++
	d.notePeak()
}

// RemoveAt drops the element at logical index pos, shifting elements at
// (pos, size) one step toward the front. Requires 0 <= pos < Len().
func (d *Deque[T]) RemoveAt(pos int) {
	for i := pos; i < d.size-1; i++ {
		d.store[(d.head+i)%len(d.store)] = d.At(i + 1)
	}
	d.PopBack()
}

// Len returns the number of elements currently held.
func (d *Deque[T]) Len() int {
	return d.size
}

// Cap returns the capacity of the backing store.
func (d *Deque[T]) Cap() int {
	return len(d.store)
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Clear drops all elements, keeping the backing store for reuse.
func (d *Deque[T]) Clear() {
	d.head = 0
	d.tail = 0
	d.size = 0
}

// Stats returns a snapshot of occupancy and growth counters.
func (d *Deque[T]) Stats() control.Stats {
	return control.Stats{Len: d.size, Cap: len(d.store), Grows: d.grows, PeakLen: d.peak}
}

// grow doubles the store (minimum 1) and unwraps the logical window to
// physical index 0. Callers invoke it only when size == cap, so the whole
// old store is live and two copies move it in logical order.
func (d *Deque[T]) grow() {
	newCap := len(d.store) * 2
	if newCap == 0 {
		newCap = 1
	}
	next := make([]T, newCap)
	n := copy(next, d.store[d.head:])
	copy(next[n:], d.store[:d.head])
	d.store = next
	d.head = 0
	d.tail = d.size
	d.grows++
}

func (d *Deque[T]) notePeak() {
	if d.size > d.peak {
		d.peak = d.size
	}
}
