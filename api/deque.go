// Package api
// Author: momentics@gmail.com
//
// Contracts for the ring-backed double-ended queue.

package api

// Container is the unchecked deque contract. Implementations perform no
// bounds validation: every precondition below is the caller's to establish,
// and violating one leaves behavior unspecified.
type Container[T any] interface {
	// PushFront inserts v before the first element, growing if full.
	PushFront(v T)
	// PushBack inserts v after the last element, growing if full.
	PushBack(v T)
	// PopFront removes the first element. Requires a non-empty container.
	PopFront()
	// PopBack removes the last element. Requires a non-empty container.
	PopBack()
	// Front returns the first element. Requires a non-empty container.
	Front() T
	// Back returns the last element. Requires a non-empty container.
	Back() T
	// At returns the element at logical index idx. Requires 0 <= idx < Len().
	At(idx int) T
	// InsertAt places v at logical index pos, shifting [pos, Len()) toward
	// the back. Requires 0 <= pos <= Len().
	InsertAt(v T, pos int)
	// RemoveAt drops the element at logical index pos, shifting (pos, Len())
	// toward the front. Requires 0 <= pos < Len().
	RemoveAt(pos int)
	// Len returns the number of elements.
	Len() int
	// Cap returns the backing store capacity.
	Cap() int
	// Empty reports Len() == 0.
	Empty() bool
}

// Checked is the validating deque contract. Operations whose preconditions
// can fail report ErrEmpty or ErrOutOfRange instead of leaving behavior
// unspecified. Pop operations additionally return the removed element.
type Checked[T any] interface {
	PushFront(v T)
	PushBack(v T)
	PopFront() (T, error)
	PopBack() (T, error)
	Front() (T, error)
	Back() (T, error)
	At(idx int) (T, error)
	Set(idx int, v T) error
	InsertAt(v T, pos int) error
	RemoveAt(pos int) error
	Len() int
	Cap() int
	Empty() bool
}
