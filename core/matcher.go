// SPDX-License-Identifier: MIT

package core

// funcMatcher is the single Matcher implementation behind Build.
// It holds only construction-time closures, never per-evaluation state.
type funcMatcher[T any] struct {
	test     func(T) bool
	describe func(Description)
	mismatch func(T, Description)
}

// Build wires a predicate, an expectation and a mismatch explanation into an
// immutable Matcher.
//
// Implementation:
//   - Stage 1: Reject a nil test, describe or mismatch func.
//   - Stage 2: Capture the three closures in a funcMatcher value.
//
// Behavior highlights:
//   - Every container adapter in this module is a thin call to Build; none
//     of them re-implements the DescribeTo/DescribeMismatch plumbing.
//   - The result holds no per-evaluation state and is safe for concurrent
//     reuse as long as the closures are.
//
// Inputs:
//   - test: the predicate; must be a pure function of actual.
//   - describe: appends the positive expectation.
//   - mismatch: appends why a given actual failed; called only after test
//     returned false, with the same actual.
//
// Returns:
//   - Matcher[T]: the immutable triad.
//
// Panics:
//   - "core: Build(nil test)" / "(nil describe)" / "(nil mismatch)".
//
// Complexity:
//   - Time O(1), Space O(1).
func Build[T any](test func(T) bool, describe func(Description), mismatch func(T, Description)) Matcher[T] {
	if test == nil {
		panic("core: Build(nil test)")
	}
	if describe == nil {
		panic("core: Build(nil describe)")
	}
	if mismatch == nil {
		panic("core: Build(nil mismatch)")
	}

	return funcMatcher[T]{test: test, describe: describe, mismatch: mismatch}
}

// Matches implements Matcher.
func (m funcMatcher[T]) Matches(actual T) bool {
	return m.test(actual)
}

// DescribeTo implements SelfDescribing.
func (m funcMatcher[T]) DescribeTo(d Description) {
	m.describe(d)
}

// DescribeMismatch implements Matcher.
func (m funcMatcher[T]) DescribeMismatch(actual T, d Description) {
	m.mismatch(actual, d)
}

// Evaluate runs m against actual the way a test framework must.
//
// Implementation:
//   - Stage 1: Call Matches exactly once.
//   - Stage 2: On success return (true, "") without building any text.
//   - Stage 3: On failure call DescribeMismatch exactly once, with the same
//     actual, into a fresh StringDescription.
//
// Returns:
//   - bool: the verdict.
//   - string: the mismatch text, "" on success.
//
// Determinism:
//   - Evaluating the same matcher on the same value twice yields the same
//     verdict and the same text.
//
// Complexity:
//   - Time O(cost of Matches) on success, plus O(cost of the mismatch text)
//     on failure.
func Evaluate[T any](m Matcher[T], actual T) (bool, string) {
	if m.Matches(actual) {
		return true, ""
	}

	d := NewStringDescription()
	m.DescribeMismatch(actual, d)

	return false, d.String()
}

// Describe renders the expectation of s into a fresh StringDescription.
func Describe(s SelfDescribing) string {
	d := NewStringDescription()
	s.DescribeTo(d)

	return d.String()
}

// Mismatch renders the mismatch description of actual against m without
// consulting Matches first. Useful in tests of matchers themselves.
func Mismatch[T any](m Matcher[T], actual T) string {
	d := NewStringDescription()
	m.DescribeMismatch(actual, d)

	return d.String()
}
