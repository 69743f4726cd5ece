// SPDX-License-Identifier: MIT

package either

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// sideMatcher is shared by IsLeftMatching and IsRightMatching; project
// extracts the wanted side, name is "Left" or "Right".
func sideMatcher[L, R, V any](
	name string,
	project func(container.Either[L, R]) (V, bool),
	m core.Matcher[V],
) core.Matcher[container.Either[L, R]] {
	return core.Build(
		func(e container.Either[L, R]) bool {
			v, ok := project(e)

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("a <" + name + "> with content matching ").AppendDescriptionOf(m)
		},
		func(e container.Either[L, R], d core.Description) {
			v, ok := project(e)
			if !ok {
				d.AppendText("Expected a <" + name + "> but got ").AppendValue(e)

				return
			}
			d.AppendText("Expected a <" + name + "> with content matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(v, d)
		},
	)
}

// IsRight matches any Right.
//
//	mismatch:  Expected a <Right> but got <Left(foo)>
func IsRight[L, R any]() core.Matcher[container.Either[L, R]] {
	return IsRightMatching[L](core.Anything[R]())
}

// IsRightMatching matches a Right whose payload satisfies m.
//
//	mismatch:  Expected a <Right> with content matching `is <1>` but was <36>
func IsRightMatching[L, R any](m core.Matcher[R]) core.Matcher[container.Either[L, R]] {
	core.MustMatcher(m, "either", "IsRightMatching")

	return sideMatcher("Right", container.Either[L, R].RightValue, m)
}

// IsLeft matches any Left.
//
//	mismatch:  Expected a <Left> but got <Right(foo)>
func IsLeft[L, R any]() core.Matcher[container.Either[L, R]] {
	return IsLeftMatching[L, R](core.Anything[L]())
}

// IsLeftMatching matches a Left whose payload satisfies m.
//
//	mismatch:  Expected a <Left> with content matching `is <1>` but was <36>
func IsLeftMatching[L, R any](m core.Matcher[L]) core.Matcher[container.Either[L, R]] {
	core.MustMatcher(m, "either", "IsLeftMatching")

	return sideMatcher("Left", container.Either[L, R].LeftValue, m)
}
