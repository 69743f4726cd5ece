// SPDX-License-Identifier: MIT

package validation

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

const (
	notValidText   = "Expected a valid Validation but it was not"
	notInvalidText = "Expected an invalid Validation but it was not"
)

// IsValid matches a Validation without errors.
//
//	mismatch:  Expected a valid Validation but it was not
func IsValid[E, T any]() core.Matcher[container.Validation[E, T]] {
	return core.Build(
		container.Validation[E, T].IsValid,
		func(d core.Description) { d.AppendText(notValidText) },
		func(_ container.Validation[E, T], d core.Description) { d.AppendText(notValidText) },
	)
}

// IsValidMatching matches a valid Validation whose value satisfies m.
//
//	describe:  a valid Validation with content matching <desc of m>
//	mismatch:  Expected a valid Validation but it was not
//	           Expected a valid Validation with content matching `is <1>` but was <2>
func IsValidMatching[E, T any](m core.Matcher[T]) core.Matcher[container.Validation[E, T]] {
	core.MustMatcher(m, "validation", "IsValidMatching")

	return core.Build(
		func(v container.Validation[E, T]) bool {
			x, ok := v.Get()

			return ok && m.Matches(x)
		},
		func(d core.Description) {
			d.AppendText("a valid Validation with content matching ").AppendDescriptionOf(m)
		},
		func(v container.Validation[E, T], d core.Description) {
			x, ok := v.Get()
			if !ok {
				d.AppendText(notValidText)

				return
			}
			d.AppendText("Expected a valid Validation with content matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(x, d)
		},
	)
}

// IsInvalid matches a Validation carrying at least one error.
//
//	mismatch:  Expected an invalid Validation but it was not
func IsInvalid[E, T any]() core.Matcher[container.Validation[E, T]] {
	return core.Build(
		container.Validation[E, T].IsInvalid,
		func(d core.Description) { d.AppendText(notInvalidText) },
		func(_ container.Validation[E, T], d core.Description) { d.AppendText(notInvalidText) },
	)
}

// IsInvalidMatching matches an invalid Validation whose accumulated errors
// satisfy m. T comes first because E is inferred from m.
//
//	describe:  an invalid Validation with errors matching <desc of m>
//	mismatch:  Expected an invalid Validation but it was not
//	           Expected an invalid Validation with errors matching `d` but <mismatch of m>
func IsInvalidMatching[T, E any](m core.Matcher[[]E]) core.Matcher[container.Validation[E, T]] {
	core.MustMatcher(m, "validation", "IsInvalidMatching")

	return core.Build(
		func(v container.Validation[E, T]) bool {
			return v.IsInvalid() && m.Matches(v.Errors())
		},
		func(d core.Description) {
			d.AppendText("an invalid Validation with errors matching ").AppendDescriptionOf(m)
		},
		func(v container.Validation[E, T], d core.Description) {
			if v.IsValid() {
				d.AppendText(notInvalidText)

				return
			}
			d.AppendText("Expected an invalid Validation with errors matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(v.Errors(), d)
		},
	)
}
