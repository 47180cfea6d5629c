// Package checked adapts the core deque as api.Checked.
//
// Deque[T] is a thin wrapper over deque.Deque[T] that validates every
// precondition the core leaves to the caller, reporting api.ErrEmpty and
// api.ErrOutOfRange instead of unspecified behavior. The validation cost
// lives entirely here; the core fast path stays unchecked.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package checked

import (
	"github.com/momentics/ringdeque/api"
	"github.com/momentics/ringdeque/core/deque"
)

// Ensure compile-time compliance.
var _ api.Checked[any] = (*Deque[any])(nil)

// Deque[T] implements api.Checked[T] over an embedded core deque.
// Push operations cannot fail and pass through unchanged.
type Deque[T any] struct {
	*deque.Deque[T]
}

// New returns an empty checked deque with no backing store.
func New[T any]() *Deque[T] {
	return &Deque[T]{Deque: deque.New[T]()}
}

// NewWithCapacity returns an empty checked deque of exactly the requested
// capacity. Negative capacities are reported rather than panicking.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, api.NewError(api.ErrCodeOutOfRange, "negative capacity").
			WithContext("capacity", capacity)
	}
	return &Deque[T]{Deque: deque.NewWithCapacity[T](capacity)}, nil
}

// Wrap places a checked facade over an existing deque. The underlying
// deque must not be mutated through other references while wrapped.
func Wrap[T any](d *deque.Deque[T]) *Deque[T] {
	return &Deque[T]{Deque: d}
}

// PopFront removes and returns the first element.
func (c *Deque[T]) PopFront() (T, error) {
	var zero T
	if c.Deque.Empty() {
		return zero, api.ErrEmpty
	}
	v := c.Deque.Front()
	c.Deque.PopFront()
	return v, nil
}

// PopBack removes and returns the last element.
func (c *Deque[T]) PopBack() (T, error) {
	var zero T
	if c.Deque.Empty() {
		return zero, api.ErrEmpty
	}
	v := c.Deque.Back()
	c.Deque.PopBack()
	return v, nil
}

// Front returns the first element.
func (c *Deque[T]) Front() (T, error) {
	if c.Deque.Empty() {
		var zero T
		return zero, api.ErrEmpty
	}
	return c.Deque.Front(), nil
}

// Back returns the last element.
func (c *Deque[T]) Back() (T, error) {
	if c.Deque.Empty() {
		var zero T
		return zero, api.ErrEmpty
	}
	return c.Deque.Back(), nil
}

// At returns the element at logical index idx.
func (c *Deque[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= c.Deque.Len() {
		var zero T
		return zero, api.NewError(api.ErrCodeOutOfRange, "index out of range").
			WithContext("index", idx).WithContext("len", c.Deque.Len())
	}
	return c.Deque.At(idx), nil
}

// Set replaces the element at logical index idx with v.
func (c *Deque[T]) Set(idx int, v T) error {
	if idx < 0 || idx >= c.Deque.Len() {
		return api.NewError(api.ErrCodeOutOfRange, "index out of range").
			WithContext("index", idx).WithContext("len", c.Deque.Len())
	}
	*c.Deque.Ptr(idx) = v
	return nil
}

// InsertAt places v at logical index pos; pos == Len() appends.
func (c *Deque[T]) InsertAt(v T, pos int) error {
	if pos < 0 || pos > c.Deque.Len() {
		return api.NewError(api.ErrCodeOutOfRange, "insert position out of range").
			WithContext("pos", pos).WithContext("len", c.Deque.Len())
	}
	c.Deque.InsertAt(v, pos)
	return nil
}

// RemoveAt drops the element at logical index pos.
func (c *Deque[T]) RemoveAt(pos int) error {
	if pos < 0 || pos >= c.Deque.Len() {
		return api.NewError(api.ErrCodeOutOfRange, "remove position out of range").
			WithContext("pos", pos).WithContext("len", c.Deque.Len())
	}
	c.Deque.RemoveAt(pos)
	return nil
}
