// SPDX-License-Identifier: MIT

package seq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matchers/core"
)

// Fixed phrases of the ordering matchers; they double as description and
// mismatch text.
const (
	sortedText        = "Expected a Seq to be sorted but it was not"
	reverseSortedText = "Expected a Seq to be reverse sorted but it was not"
)

// natural is the three-way comparison of the natural order.
func natural[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortedCopy returns s stably sorted by cmp, descending when desc is set.
func sortedCopy[T any](s []T, cmp func(a, b T) int, desc bool) []T {
	out := clone(s)
	if desc {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}

	return out
}

// orderMatcher compares s with its sorted (or sorted-then-reversed)
// counterpart; ties are allowed.
func orderMatcher[T any](cmp func(a, b T) int, desc bool, text string) core.Matcher[[]T] {
	fixed := func(d core.Description) { d.AppendText(text) }

	return core.Build(
		func(s []T) bool {
			return slices.EqualFunc(s, sortedCopy(s, cmp, desc), func(a, b T) bool { return cmp(a, b) == 0 })
		},
		fixed,
		func(_ []T, d core.Description) { fixed(d) },
	)
}

// IsSorted matches a sequence in non-decreasing natural order.
//
//	mismatch:  Expected a Seq to be sorted but it was not
func IsSorted[T constraints.Ordered]() core.Matcher[[]T] {
	return orderMatcher(natural[T], false, sortedText)
}

// IsSortedFunc is IsSorted under a custom three-way comparison.
// Panics on nil cmp.
func IsSortedFunc[T any](cmp func(a, b T) int) core.Matcher[[]T] {
	if cmp == nil {
		panic("seq: IsSortedFunc(nil)")
	}

	return orderMatcher(cmp, false, sortedText)
}

// IsReverseSorted matches a sequence in non-increasing natural order.
//
//	mismatch:  Expected a Seq to be reverse sorted but it was not
func IsReverseSorted[T constraints.Ordered]() core.Matcher[[]T] {
	return orderMatcher(natural[T], true, reverseSortedText)
}

// IsReverseSortedFunc is IsReverseSorted under a custom comparison.
// Panics on nil cmp.
func IsReverseSortedFunc[T any](cmp func(a, b T) int) core.Matcher[[]T] {
	if cmp == nil {
		panic("seq: IsReverseSortedFunc(nil)")
	}

	return orderMatcher(cmp, true, reverseSortedText)
}

// StartsWith matches a sequence whose leading elements equal items.
// The reported window is clipped to the actual length.
//
//	mismatch:  Expected a Seq to start with [<1>,<2>] but found a Seq starting with [<2>,<1>]
func StartsWith[T any](items ...T) core.Matcher[[]T] {
	items = clone(items)
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Seq to start with "), items)
	}

	return core.Build(
		func(s []T) bool { return len(items) <= len(s) && windowEqual(s, 0, items) },
		describe,
		func(s []T, d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but found a Seq starting with "), head(s, len(items)))
		},
	)
}

// EndsWith matches a sequence whose trailing elements equal items.
// When items is longer than the sequence the whole sequence is reported.
//
//	mismatch:  Expected a Seq to end with [<1>,<2>,<3>] but found a Seq ending with [<2>,<1>]
func EndsWith[T any](items ...T) core.Matcher[[]T] {
	items = clone(items)
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Seq to end with "), items)
	}

	return core.Build(
		func(s []T) bool { return len(items) <= len(s) && windowEqual(s, len(s)-len(items), items) },
		describe,
		func(s []T, d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but found a Seq ending with "), tail(s, len(items)))
		},
	)
}

// IsUnique matches a sequence without repeated elements. Duplicates are
// reported once each, in order of first occurrence, not by position.
//
//	mismatch:  Expected a Seq to have unique elements but found the following duplicate elements [<1>,<3>]
func IsUnique[T any]() core.Matcher[[]T] {
	return core.Build(
		func(s []T) bool { return len(duplicates(s)) == 0 },
		func(d core.Description) { d.AppendText("Expected a Seq to have unique elements") },
		func(s []T, d core.Description) {
			d.AppendText("Expected a Seq to have unique elements but found the following duplicate elements ")
			core.AppendValues(d, duplicates(s))
		},
	)
}
