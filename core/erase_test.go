// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchers/core"
)

// TestErase checks that ill-typed values never reach the typed predicate.
func TestErase(t *testing.T) {
	calls := 0
	m := core.Erase(core.Satisfies("one", func(n int) bool {
		calls++

		return n == 1
	}))

	assert.True(t, m.Accepts(1))
	assert.False(t, m.Accepts("1"))
	assert.True(t, m.MatchesAny(1))
	assert.False(t, m.MatchesAny("1"))
	assert.False(t, m.MatchesAny(nil))
	assert.Equal(t, 1, calls)

	d := core.NewStringDescription()
	m.DescribeMismatchAny("1", d)
	assert.Equal(t, `was a string ("1")`, d.String())

	d = core.NewStringDescription()
	m.DescribeMismatchAny(nil, d)
	assert.Equal(t, "was nil", d.String())

	d = core.NewStringDescription()
	m.DescribeMismatchAny(2, d)
	assert.Equal(t, "was <2>", d.String())
	assert.Equal(t, "one", core.Describe(m))
}

// TestNarrow covers nil handling for nilable and non-nilable types.
func TestNarrow(t *testing.T) {
	v, ok := core.Narrow[int](3)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = core.Narrow[int](nil)
	assert.False(t, ok)

	p, ok := core.Narrow[*int](nil)
	require.True(t, ok)
	assert.Nil(t, p)

	s, ok := core.Narrow[[]int](nil)
	require.True(t, ok)
	assert.Nil(t, s)

	err, ok := core.Narrow[error](errors.New("x"))
	require.True(t, ok)
	assert.EqualError(t, err, "x")
}

// TestTypeMismatchError wraps the sentinel.
func TestTypeMismatchError(t *testing.T) {
	err := core.TypeMismatchError[int]("x")

	assert.ErrorIs(t, err, core.ErrTypeMismatch)
	assert.EqualError(t, err, "core: actual value has incompatible type: expected int, got string")
}
