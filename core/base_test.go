// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matchers/core"
)

type point struct {
	x, y int
}

// TestAnything matches everything, nil included.
func TestAnything(t *testing.T) {
	assert.True(t, core.Anything[int]().Matches(0))
	assert.True(t, core.Anything[error]().Matches(nil))
	assert.Equal(t, "ANYTHING", core.Describe(core.Anything[string]()))
}

// TestEqualTo covers deep equality over unexported fields and errors.
func TestEqualTo(t *testing.T) {
	assert.True(t, core.EqualTo(point{1, 2}).Matches(point{1, 2}))
	assert.False(t, core.EqualTo(point{1, 2}).Matches(point{2, 1}))
	assert.True(t, core.EqualTo([]int{1, 2}).Matches([]int{1, 2}))
	assert.True(t, core.EqualTo(map[string]int{"a": 1}).Matches(map[string]int{"a": 1}))

	sentinel := errors.New("boom")
	assert.True(t, core.EqualTo(sentinel).Matches(sentinel))

	assert.Equal(t, "<1>", core.Describe(core.EqualTo(1)))
	assert.Equal(t, "was <36>", core.Mismatch(core.EqualTo(1), 36))
	assert.Equal(t, `"foo"`, core.Describe(core.EqualTo("foo")))
}

// TestIsAndNot covers the decorating matchers.
func TestIsAndNot(t *testing.T) {
	assert.Equal(t, "is <1>", core.Describe(core.IsValue(1)))
	assert.Equal(t, "was <2>", core.Mismatch(core.IsValue(1), 2))
	assert.Equal(t, "not is <1>", core.Describe(core.Not(core.IsValue(1))))
	assert.True(t, core.Not(core.IsValue(1)).Matches(2))
	assert.False(t, core.Not(core.IsValue(1)).Matches(1))
	assert.Equal(t, "was <1>", core.Mismatch(core.Not(core.IsValue(1)), 1))

	assert.PanicsWithValue(t, "core: Is(nil matcher)", func() { core.Is[int](nil) })
	assert.PanicsWithValue(t, "core: Not(nil matcher)", func() { core.Not[int](nil) })
}

// TestSatisfies wraps a plain predicate.
func TestSatisfies(t *testing.T) {
	even := core.Satisfies("an even number", func(n int) bool { return n%2 == 0 })

	assert.True(t, even.Matches(4))
	assert.False(t, even.Matches(3))
	assert.Equal(t, "an even number", core.Describe(even))
	assert.Equal(t, "was <3>", core.Mismatch(even, 3))
	assert.Panics(t, func() { core.Satisfies[int]("x", nil) })
}

// TestAllOfAnyOf covers descriptions and the first-failure mismatch.
func TestAllOfAnyOf(t *testing.T) {
	between := core.AllOf(core.GreaterThan(1), core.LessThan(3))

	assert.True(t, between.Matches(2))
	assert.False(t, between.Matches(7))
	assert.Equal(t, "(a value greater than <1> and a value less than <3>)", core.Describe(between))
	assert.Equal(t, "a value less than <3> <7> was greater than <3>", core.Mismatch(between, 7))

	either := core.AnyOf(core.IsValue(1), core.IsValue(2))
	assert.True(t, either.Matches(2))
	assert.False(t, either.Matches(3))
	assert.Equal(t, "(is <1> or is <2>)", core.Describe(either))
	assert.Equal(t, "was <3>", core.Mismatch(either, 3))

	assert.False(t, core.AnyOf[int]().Matches(1))
	assert.True(t, core.AllOf[int]().Matches(1))
}

// TestOrdering pins the hamcrest comparison phrases.
func TestOrdering(t *testing.T) {
	cases := []struct {
		name     string
		m        core.Matcher[int]
		actual   int
		match    bool
		describe string
		mismatch string
	}{
		{"LessThan", core.LessThan(36), 1337, false, "a value less than <36>", "<1337> was greater than <36>"},
		{"LessThanOrEqualTo", core.LessThanOrEqualTo(36), 36, true, "a value less than or equal to <36>", ""},
		{"GreaterThan", core.GreaterThan(1), 1, false, "a value greater than <1>", "<1> was equal to <1>"},
		{"GreaterThanOrEqualTo", core.GreaterThanOrEqualTo(1), 0, false, "a value equal to or greater than <1>", "<0> was less than <1>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, text := core.Evaluate(tc.m, tc.actual)
			assert.Equal(t, tc.match, ok)
			assert.Equal(t, tc.describe, core.Describe(tc.m))
			assert.Equal(t, tc.mismatch, text)
		})
	}
}

// TestOrderingNaN documents that NaN compares as equal.
func TestOrderingNaN(t *testing.T) {
	assert.True(t, core.GreaterThanOrEqualTo(1.0).Matches(math.NaN()))
	assert.False(t, core.LessThan(1.0).Matches(math.NaN()))
}

// TestStrings covers EmptyString and HasLen.
func TestStrings(t *testing.T) {
	assert.True(t, core.EmptyString().Matches(""))
	assert.Equal(t, `was "foo"`, core.Mismatch(core.EmptyString(), "foo"))

	assert.True(t, core.HasLen(3).Matches("héé"))
	assert.Equal(t, "a string with length <3>", core.Describe(core.HasLen(3)))
	assert.Equal(t, "length was <4>", core.Mismatch(core.HasLen(3), "abcd"))
}
