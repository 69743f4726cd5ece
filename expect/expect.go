// SPDX-License-Identifier: MIT

package expect

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchers/core"
)

// TestingT is the subset of *testing.T used by That.
type TestingT = assert.TestingT

// FatalT is the subset of *testing.T used by Must.
type FatalT = require.TestingT

type tHelper interface {
	Helper()
}

// Message renders the failure block for a value that did not match m.
func Message(description, mismatch string) string {
	return "\nExpected: " + description + "\n     but: " + mismatch
}

// That asserts that actual satisfies m. It returns whether it did.
func That[T any](t TestingT, actual T, m core.Matcher[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	core.MustMatcher(m, "expect", "That")

	ok, mismatch := core.Evaluate(m, actual)
	if ok {
		return true
	}

	return assert.Fail(t, Message(core.Describe(m), mismatch), msgAndArgs...)
}

// Must is That followed by t.FailNow on failure.
func Must[T any](t FatalT, actual T, m core.Matcher[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	core.MustMatcher(m, "expect", "Must")

	ok, mismatch := core.Evaluate(m, actual)
	if ok {
		return
	}
	require.FailNow(t, Message(core.Describe(m), mismatch), msgAndArgs...)
}

// AnyThat is That for matchers whose static type was erased; a value of the
// wrong type fails with "was a <type> (<value>)".
func AnyThat(t TestingT, actual any, m core.AnyMatcher, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if m == nil {
		panic("expect: AnyThat(nil matcher)")
	}
	if m.MatchesAny(actual) {
		return true
	}
	d := core.NewStringDescription()
	m.DescribeMismatchAny(actual, d)

	return assert.Fail(t, Message(core.Describe(m), d.String()), msgAndArgs...)
}
