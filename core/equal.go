// SPDX-License-Identifier: MIT

package core

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOpts lets cmp descend into unexported fields and compares errors
// with errors.Is semantics.
var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateErrors(),
}

// Equal reports deep equality of a and b.
//
// It is the single equality used by EqualTo and by every container adapter
// (membership, sub-lists, map values, uniqueness). cmp panics on a few exotic
// shapes; Equal then falls back to reflect.DeepEqual so matchers stay total.
func Equal(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()

	return cmp.Equal(a, b, equalOpts...)
}

// IndexOf returns the first index of v in items under Equal, or -1.
func IndexOf[T any](items []T, v T) int {
	for i, it := range items {
		if Equal(it, v) {
			return i
		}
	}

	return -1
}

// ContainsValue reports whether v is in items under Equal.
func ContainsValue[T any](items []T, v T) bool {
	return IndexOf(items, v) >= 0
}

// Missing returns the elements of expected that are absent from actual,
// preserving the order of expected.
// Complexity: O(len(expected)·len(actual)).
func Missing[T any](expected, actual []T) []T {
	var out []T
	for _, e := range expected {
		if !ContainsValue(actual, e) {
			out = append(out, e)
		}
	}

	return out
}
