// SPDX-License-Identifier: MIT

package container

import "fmt"

// Try is the outcome of a computation: a Success value or a Failure cause.
// The zero Try is a Success holding the zero T.
type Try[T any] struct {
	value T
	cause error
}

// Success returns a successful Try holding v.
func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure returns a failed Try. A nil cause is a programmer error.
func Failure[T any](cause error) Try[T] {
	if cause == nil {
		panic("container: Failure(nil cause)")
	}

	return Try[T]{cause: cause}
}

// TryOf runs fn and captures its outcome. A panic inside fn becomes a
// Failure whose cause wraps ErrPanicked.
func TryOf[T any](fn func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Try[T]{cause: fmt.Errorf("%w: %v", ErrPanicked, r)}
		}
	}()

	v, err := fn()
	if err != nil {
		return Try[T]{cause: err}
	}

	return Success(v)
}

// Get returns the success value and true, or the zero T and false.
func (t Try[T]) Get() (T, bool) {
	if t.cause != nil {
		var zero T

		return zero, false
	}

	return t.value, true
}

// Cause returns the failure cause, nil for a Success.
func (t Try[T]) Cause() error { return t.cause }

// IsSuccess reports whether t holds a value.
func (t Try[T]) IsSuccess() bool { return t.cause == nil }

// IsFailure reports whether t holds a cause.
func (t Try[T]) IsFailure() bool { return t.cause != nil }

// String renders Success(v) or Failure(message).
func (t Try[T]) String() string {
	if t.cause != nil {
		return fmt.Sprintf("Failure(%v)", t.cause)
	}

	return fmt.Sprintf("Success(%v)", t.value)
}
