// SPDX-License-Identifier: MIT

package seq

import "github.com/katalvlaran/matchers/core"

// IsEmpty matches a sequence without elements (nil included).
//
//	mismatch:  Expected an empty value but found <[foo, bar]>
func IsEmpty[T any]() core.Matcher[[]T] {
	return core.Build(
		func(s []T) bool { return len(s) == 0 },
		func(d core.Description) { d.AppendText("an empty value") },
		func(s []T, d core.Description) {
			d.AppendText("Expected an empty value but found ").AppendValue(s)
		},
	)
}

// HasLength matches a sequence of exactly n elements.
//
//	mismatch:  Expected Traversable to have length <1> but has length <2>
func HasLength[T any](n int) core.Matcher[[]T] {
	return core.Build(
		func(s []T) bool { return len(s) == n },
		func(d core.Description) {
			d.AppendText("Expected Traversable to have length ").AppendValue(n)
		},
		func(s []T, d core.Description) {
			d.AppendText("Expected Traversable to have length ").AppendValue(n).
				AppendText(" but has length ").AppendValue(len(s))
		},
	)
}

// HasLengthMatching matches a sequence whose length satisfies m.
//
//	mismatch:  Expected Traversable to match length a value less than <2> but has length <3>
func HasLengthMatching[T any](m core.Matcher[int]) core.Matcher[[]T] {
	core.MustMatcher(m, "seq", "HasLengthMatching")

	return core.Build(
		func(s []T) bool { return m.Matches(len(s)) },
		func(d core.Description) {
			d.AppendText("Expected Traversable to match length ").AppendDescriptionOf(m)
		},
		func(s []T, d core.Description) {
			d.AppendText("Expected Traversable to match length ").AppendDescriptionOf(m).
				AppendText(" but has length ").AppendValue(len(s))
		},
	)
}
