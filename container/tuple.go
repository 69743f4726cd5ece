// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"strings"
)

// Tuple is a fixed-arity, heterogeneous sequence of values.
// The zero Tuple has arity 0.
type Tuple struct {
	values []any
}

// TupleOf returns a Tuple holding a copy of values.
func TupleOf(values ...any) Tuple {
	cp := make([]any, len(values))
	copy(cp, values)

	return Tuple{values: cp}
}

// Pair is TupleOf(a, b) with the element types checked at compile time.
func Pair[A, B any](a A, b B) Tuple {
	return TupleOf(a, b)
}

// Triple is TupleOf(a, b, c) with the element types checked at compile time.
func Triple[A, B, C any](a A, b B, c C) Tuple {
	return TupleOf(a, b, c)
}

// Arity returns the number of elements.
func (t Tuple) Arity() int { return len(t.values) }

// At returns the element at position i (0-based) and whether i is in range.
func (t Tuple) At(i int) (any, bool) {
	if i < 0 || i >= len(t.values) {
		return nil, false
	}

	return t.values[i], true
}

// String renders (a, b, c).
func (t Tuple) String() string {
	parts := make([]string, len(t.values))
	for i, v := range t.values {
		parts[i] = fmt.Sprint(v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
