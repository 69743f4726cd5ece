// SPDX-License-Identifier: MIT

package seq

import "github.com/katalvlaran/matchers/core"

// Contains matches a sequence holding at least one element equal to v.
func Contains[T any](v T) core.Matcher[[]T] {
	return ContainsMatching(core.IsValue(v))
}

// ContainsMatching matches a sequence holding at least one element that
// satisfies m. The whole sequence is printed on a mismatch:
//
//	mismatch:  Expected at least one element matching `is <0>' but found <[1, 2]>
func ContainsMatching[T any](m core.Matcher[T]) core.Matcher[[]T] {
	core.MustMatcher(m, "seq", "ContainsMatching")

	return core.Build(
		func(s []T) bool {
			for _, e := range s {
				if m.Matches(e) {
					return true
				}
			}

			return false
		},
		func(d core.Description) {
			d.AppendText("Expected at least one element matching ").AppendDescriptionOf(m)
		},
		func(s []T, d core.Description) {
			d.AppendText("Expected at least one element matching `").AppendDescriptionOf(m).
				AppendText("' but found ").AppendValue(s)
		},
	)
}

// ContainsInAnyOrder matches a sequence in which every item is present at
// least once; order and multiplicity are ignored. Missing items are reported
// in the order they were given.
//
// Implementation:
//   - Stage 1: Clone items so later writes by the caller cannot leak in.
//   - Stage 2: Missing = items \ actual, by core.Equal membership.
//   - Stage 3: Match iff Missing is empty; the mismatch lists Missing.
//
// Notes:
//   - Presence, not count: ["foo"] contains in any order ["foo", "foo"].
//
// Complexity:
//   - Time O(len(items)·len(actual)), Space O(len(items)).
//
//	mismatch:  Expected a Traversable containing all of ["foo","bar","bazz"] but is missing ["bar","bazz"]
func ContainsInAnyOrder[T any](items ...T) core.Matcher[[]T] {
	items = clone(items)
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Traversable containing all of "), items)
	}

	return core.Build(
		func(s []T) bool { return len(core.Missing(items, s)) == 0 },
		describe,
		func(s []T, d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but is missing "), core.Missing(items, s))
		},
	)
}

// ContainsSubList matches a sequence in which items appear as one contiguous
// run, in the same order. An empty items list is contained everywhere.
//
// Complexity:
//   - Time O(len(actual)·len(items)) for the window scan.
//
//	mismatch:  Expected a Traversable containing in same order all of [..] but is missing [..]
//	           Expected a Traversable containing in same order all of [..] but was not
func ContainsSubList[T any](items ...T) core.Matcher[[]T] {
	items = clone(items)

	return core.Build(
		func(s []T) bool { return indexOfWindow(s, items) >= 0 },
		inSameOrderDescription(items),
		inSameOrderMismatch(items),
	)
}

// ContainsInOrder matches a sequence in which items appear in the same
// relative order, not necessarily adjacent.
//
//	[foo bar bazz quxx] contains in order [foo bazz quxx]
//	[foo bar bazz]      does not contain in order [bar foo]
func ContainsInOrder[T any](items ...T) core.Matcher[[]T] {
	items = clone(items)

	return core.Build(
		func(s []T) bool { return isSubsequence(s, items) },
		inSameOrderDescription(items),
		inSameOrderMismatch(items),
	)
}

// AllMatch matches a sequence whose every element satisfies m. The empty
// sequence matches.
//
//	mismatch:  Expected a Traversable where all elements should match is <true> but found non-matching elements [<false>,<false>]
func AllMatch[T any](m core.Matcher[T]) core.Matcher[[]T] {
	core.MustMatcher(m, "seq", "AllMatch")
	describe := func(d core.Description) {
		d.AppendText("Expected a Traversable where all elements should match ").AppendDescriptionOf(m)
	}

	return core.Build(
		func(s []T) bool {
			for _, e := range s {
				if !m.Matches(e) {
					return false
				}
			}

			return true
		},
		describe,
		func(s []T, d core.Description) {
			var failing []T
			for _, e := range s {
				if !m.Matches(e) {
					failing = append(failing, e)
				}
			}
			describe(d)
			core.AppendValues(d.AppendText(" but found non-matching elements "), failing)
		},
	)
}

// inSameOrderDescription is the shared expectation of the order-aware
// containment matchers.
func inSameOrderDescription[T any](items []T) func(core.Description) {
	return func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Traversable containing in same order all of "), items)
	}
}

// inSameOrderMismatch names the absent items when there are any; otherwise
// every item is present but the order or adjacency is wrong.
func inSameOrderMismatch[T any](items []T) func([]T, core.Description) {
	describe := inSameOrderDescription(items)

	return func(s []T, d core.Description) {
		describe(d)
		if missing := core.Missing(items, s); len(missing) > 0 {
			core.AppendValues(d.AppendText(" but is missing "), missing)

			return
		}
		d.AppendText(" but was not")
	}
}
