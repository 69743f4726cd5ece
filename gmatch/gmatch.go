// SPDX-License-Identifier: MIT

package gmatch

import (
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/katalvlaran/matchers/core"
)

// Matcher is a core.Matcher seen through Gomega.
type Matcher[T any] struct {
	m core.Matcher[T]
}

var _ types.GomegaMatcher = (*Matcher[int])(nil)

// Adapt wraps m for use with Gomega. Panics on nil.
func Adapt[T any](m core.Matcher[T]) *Matcher[T] {
	core.MustMatcher(m, "gmatch", "Adapt")

	return &Matcher[T]{m: m}
}

// Match implements types.GomegaMatcher.
func (g *Matcher[T]) Match(actual any) (bool, error) {
	v, ok := core.Narrow[T](actual)
	if !ok {
		return false, core.TypeMismatchError[T](actual)
	}

	return g.m.Matches(v), nil
}

// FailureMessage implements types.GomegaMatcher.
//
//	Expected
//	    <int>: 2
//	to satisfy
//	    is <1>
//	but
//	    was <2>
func (g *Matcher[T]) FailureMessage(actual any) string {
	return "Expected\n" + format.Object(actual, 1) +
		"\nto satisfy\n" + format.IndentString(core.Describe(g.m), 1) +
		"\nbut\n" + format.IndentString(g.mismatch(actual), 1)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (g *Matcher[T]) NegatedFailureMessage(actual any) string {
	return "Expected\n" + format.Object(actual, 1) + "\nnot to satisfy\n" + format.IndentString(core.Describe(g.m), 1)
}

// MatchMayChangeInTheFuture reports false for a value of the wrong type:
// Eventually can stop polling since no later value of that type will match.
func (g *Matcher[T]) MatchMayChangeInTheFuture(actual any) bool {
	_, ok := core.Narrow[T](actual)

	return ok
}

// mismatch explains actual against m; ill-typed values get the
// "was a <type> (<value>)" text.
func (g *Matcher[T]) mismatch(actual any) string {
	d := core.NewStringDescription()
	core.Erase(g.m).DescribeMismatchAny(actual, d)

	return d.String()
}
