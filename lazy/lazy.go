// SPDX-License-Identifier: MIT

package lazy

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// notEvaluatedText is the fixed text for an unevaluated Lazy.
const notEvaluatedText = "Expected an evaluated Lazy but it was not"

// IsEvaluated matches a Lazy whose value has already been computed.
//
//	mismatch:  Expected an evaluated Lazy but it was not
func IsEvaluated[T any]() core.Matcher[*container.Lazy[T]] {
	return core.Build(
		func(l *container.Lazy[T]) bool { return l != nil && l.IsEvaluated() },
		func(d core.Description) { d.AppendText(notEvaluatedText) },
		func(_ *container.Lazy[T], d core.Description) { d.AppendText(notEvaluatedText) },
	)
}

// IsEvaluatedMatching matches an evaluated Lazy whose value satisfies m.
//
//	describe:  an evaluated Lazy with content matching <desc of m>
//	mismatch:  Expected an evaluated Lazy but it was not
//	           Expected an evaluated Lazy with content matching `is <1>` but was <2>
func IsEvaluatedMatching[T any](m core.Matcher[T]) core.Matcher[*container.Lazy[T]] {
	core.MustMatcher(m, "lazy", "IsEvaluatedMatching")

	peek := func(l *container.Lazy[T]) (T, bool) {
		if l == nil {
			var zero T

			return zero, false
		}

		return l.Peek()
	}

	return core.Build(
		func(l *container.Lazy[T]) bool {
			v, ok := peek(l)

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("an evaluated Lazy with content matching ").AppendDescriptionOf(m)
		},
		func(l *container.Lazy[T], d core.Description) {
			v, ok := peek(l)
			if !ok {
				d.AppendText(notEvaluatedText)

				return
			}
			d.AppendText("Expected an evaluated Lazy with content matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(v, d)
		},
	)
}
