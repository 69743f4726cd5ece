// SPDX-License-Identifier: MIT

package tuple

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// HasArity matches tuples of exactly n elements. Panics on negative n.
//
//	describe:  Expected a Tuple with arity <2>
//	mismatch:  Expected a Tuple with arity <2> but found one with arity <3>
func HasArity(n int) core.Matcher[container.Tuple] {
	if n < 0 {
		panic("tuple: HasArity(negative arity)")
	}
	expected := func(d core.Description) {
		d.AppendText("Expected a Tuple with arity ").AppendValue(n)
	}

	return core.Build(
		func(t container.Tuple) bool { return t.Arity() == n },
		expected,
		func(t container.Tuple, d core.Description) {
			expected(d)
			d.AppendText(" but found one with arity ").AppendValue(t.Arity())
		},
	)
}

// HasArityMatching matches tuples whose arity satisfies m.
//
//	describe:  Expected a Tuple to match arity is <2>
//	mismatch:  Expected a Tuple to match arity is <2> but has arity <3>
func HasArityMatching(m core.Matcher[int]) core.Matcher[container.Tuple] {
	core.MustMatcher(m, "tuple", "HasArityMatching")

	expected := func(d core.Description) {
		d.AppendText("Expected a Tuple to match arity ").AppendDescriptionOf(m)
	}

	return core.Build(
		func(t container.Tuple) bool { return m.Matches(t.Arity()) },
		expected,
		func(t container.Tuple, d core.Description) {
			expected(d)
			d.AppendText(" but has arity ").AppendValue(t.Arity())
		},
	)
}

// HasElementAt matches tuples whose element at position i (0-based) is a T
// satisfying m. An element of another type is a mismatch, not a panic.
//
//	describe:  a Tuple with element <0> matching is <1>
//	mismatch:  Expected a Tuple with element <2> matching is <1> but it has arity <2>
//	           Expected a Tuple with element <0> matching is <1> but was <2>
//	           Expected a Tuple with element <0> matching is <1> but was a string ("a")
func HasElementAt[T any](i int, m core.Matcher[T]) core.Matcher[container.Tuple] {
	core.MustMatcher(m, "tuple", "HasElementAt")
	if i < 0 {
		panic("tuple: HasElementAt(negative index)")
	}

	element := func(t container.Tuple) (any, T, bool) {
		raw, ok := t.At(i)
		if !ok {
			var zero T

			return nil, zero, false
		}
		v, ok := core.Narrow[T](raw)

		return raw, v, ok
	}

	return core.Build(
		func(t container.Tuple) bool {
			_, v, ok := element(t)

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("a Tuple with element ").AppendValue(i).AppendText(" matching ").AppendDescriptionOf(m)
		},
		func(t container.Tuple, d core.Description) {
			d.AppendText("Expected a Tuple with element ").
				AppendValue(i).
				AppendText(" matching ").
				AppendDescriptionOf(m).
				AppendText(" but ")
			if i >= t.Arity() {
				d.AppendText("it has arity ").AppendValue(t.Arity())

				return
			}
			raw, v, ok := element(t)
			if !ok {
				core.DescribeTypeMismatch(raw, d)

				return
			}
			m.DescribeMismatch(v, d)
		},
	)
}
