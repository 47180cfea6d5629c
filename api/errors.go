// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the ringdeque library.
// Only the checked contract reports errors; the unchecked fast path never
// validates and therefore never allocates one.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrEmpty      = fmt.Errorf("deque is empty")
	ErrOutOfRange = fmt.Errorf("index out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeEmpty
	ErrCodeOutOfRange
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel so errors.Is keeps working.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeEmpty:
		return ErrEmpty
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
