// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"strings"
)

// Validation is either Valid with a value or Invalid with the accumulated
// errors of every failed check. The zero Validation is Valid(zero T).
type Validation[E, T any] struct {
	value T
	errs  []E
}

// Valid returns a successful Validation holding v.
func Valid[E, T any](v T) Validation[E, T] {
	return Validation[E, T]{value: v}
}

// Invalid returns a failed Validation. Panics when errs is empty: an invalid
// outcome without a reason is a programmer error.
func Invalid[E, T any](errs ...E) Validation[E, T] {
	if len(errs) == 0 {
		panic("container: Invalid() without errors")
	}
	cp := make([]E, len(errs))
	copy(cp, errs)

	return Validation[E, T]{errs: cp}
}

// Combine merges two validations with f. Both must be valid for f to run;
// otherwise the errors of both sides are accumulated, a's first.
func Combine[E, A, B, T any](a Validation[E, A], b Validation[E, B], f func(A, B) T) Validation[E, T] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](f(a.value, b.value))
	}
	errs := make([]E, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)

	return Validation[E, T]{errs: errs}
}

// IsValid reports whether v carries no errors.
func (v Validation[E, T]) IsValid() bool { return len(v.errs) == 0 }

// IsInvalid reports whether v carries errors.
func (v Validation[E, T]) IsInvalid() bool { return len(v.errs) > 0 }

// Get returns the value and true when valid.
func (v Validation[E, T]) Get() (T, bool) {
	if v.IsInvalid() {
		var zero T

		return zero, false
	}

	return v.value, true
}

// Errors returns a copy of the accumulated errors, nil when valid.
func (v Validation[E, T]) Errors() []E {
	if v.IsValid() {
		return nil
	}
	cp := make([]E, len(v.errs))
	copy(cp, v.errs)

	return cp
}

// String renders Valid(v) or Invalid(e1, e2).
func (v Validation[E, T]) String() string {
	if v.IsValid() {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	parts := make([]string, len(v.errs))
	for i, e := range v.errs {
		parts[i] = fmt.Sprint(e)
	}

	return "Invalid(" + strings.Join(parts, ", ") + ")"
}
