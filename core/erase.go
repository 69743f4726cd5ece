// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"reflect"
)

// AnyMatcher is the dynamically typed face of a Matcher. It is what callers
// without static types (Gomega, table-driven helpers over []any) use.
type AnyMatcher interface {
	SelfDescribing

	// MatchesAny reports false, without consulting the typed predicate,
	// when actual is not an instance of the matcher's type.
	MatchesAny(actual any) bool

	// DescribeMismatchAny explains the mismatch; for an ill-typed value it
	// writes "was a <type> (<value>)" or "was nil".
	DescribeMismatchAny(actual any, d Description)

	// Accepts reports whether actual is an instance of the matcher's type.
	Accepts(actual any) bool
}

// erased wraps a typed Matcher behind the runtime type check.
type erased[T any] struct {
	m Matcher[T]
}

// Erase returns the runtime type-checked view of m.
// Panics on nil.
func Erase[T any](m Matcher[T]) AnyMatcher {
	mustMatcher(m, "Erase")

	return erased[T]{m: m}
}

// DescribeTo implements SelfDescribing.
func (e erased[T]) DescribeTo(d Description) {
	e.m.DescribeTo(d)
}

// Accepts implements AnyMatcher.
func (e erased[T]) Accepts(actual any) bool {
	_, ok := Narrow[T](actual)

	return ok
}

// MatchesAny implements AnyMatcher.
func (e erased[T]) MatchesAny(actual any) bool {
	v, ok := Narrow[T](actual)
	if !ok {
		return false
	}

	return e.m.Matches(v)
}

// DescribeMismatchAny implements AnyMatcher.
func (e erased[T]) DescribeMismatchAny(actual any, d Description) {
	v, ok := Narrow[T](actual)
	if !ok {
		DescribeTypeMismatch(actual, d)

		return
	}
	e.m.DescribeMismatch(v, d)
}

// Narrow converts actual to T. A nil actual narrows to the zero T only when
// T can hold nil (pointer, interface, slice, map, chan, func).
func Narrow[T any](actual any) (T, bool) {
	if v, ok := actual.(T); ok {
		return v, true
	}

	var zero T
	if actual == nil && nilable(reflect.TypeOf((*T)(nil)).Elem()) {
		return zero, true
	}

	return zero, false
}

// nilable reports whether values of t may be nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

// DescribeTypeMismatch writes the mismatch text for a value of the wrong
// shape: "was nil" or "was a <type> (<value>)".
func DescribeTypeMismatch(actual any, d Description) {
	if actual == nil {
		d.AppendText("was ").AppendText(nilText)

		return
	}
	d.AppendText("was a ").AppendText(TypeName(actual)).AppendText(" (").AppendValue(actual).AppendText(")")
}

// TypeMismatchError wraps ErrTypeMismatch with the expected and actual types.
func TypeMismatchError[T any](actual any) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, TypeNameOf[T](), TypeName(actual))
}
