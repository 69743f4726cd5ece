// SPDX-License-Identifier: MIT

package core

import "golang.org/x/exp/constraints"

// comparison words, indexed by sign+1 (-1 → "less than", 0 → "equal to",
// +1 → "greater than").
var comparisonText = [3]string{"less than", "equal to", "greater than"}

// compare returns -1, 0 or +1 for the natural order of a and b.
func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// orderingMatcher accepts actual when compare(actual, expected) lies in
// [minCmp, maxCmp].
//
//	describe:  a value less than <36>
//	           a value equal to or greater than <1>
//	mismatch:  <1337> was greater than <36>
func orderingMatcher[T constraints.Ordered](expected T, minCmp, maxCmp int) Matcher[T] {
	return Build(
		func(actual T) bool {
			c := compare(actual, expected)

			return minCmp <= c && c <= maxCmp
		},
		func(d Description) {
			d.AppendText("a value ").AppendText(comparisonText[minCmp+1])
			if minCmp != maxCmp {
				d.AppendText(" or ").AppendText(comparisonText[maxCmp+1])
			}
			d.AppendText(" ").AppendValue(expected)
		},
		func(actual T, d Description) {
			d.AppendValue(actual).
				AppendText(" was ").
				AppendText(comparisonText[compare(actual, expected)+1]).
				AppendText(" ").
				AppendValue(expected)
		},
	)
}

// LessThan matches values strictly below expected.
func LessThan[T constraints.Ordered](expected T) Matcher[T] {
	return orderingMatcher(expected, -1, -1)
}

// LessThanOrEqualTo matches values at or below expected.
func LessThanOrEqualTo[T constraints.Ordered](expected T) Matcher[T] {
	return orderingMatcher(expected, -1, 0)
}

// GreaterThan matches values strictly above expected.
func GreaterThan[T constraints.Ordered](expected T) Matcher[T] {
	return orderingMatcher(expected, 1, 1)
}

// GreaterThanOrEqualTo matches values at or above expected.
func GreaterThanOrEqualTo[T constraints.Ordered](expected T) Matcher[T] {
	return orderingMatcher(expected, 0, 1)
}
