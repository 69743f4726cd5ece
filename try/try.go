// SPDX-License-Identifier: MIT

package try

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// failureOf renders "<Failure(<cause type>)>".
func failureOf(cause error) string {
	return "<Failure(" + core.TypeName(cause) + ")>"
}

// successOf renders "<Success(v)>".
func successOf[T any](v T) string {
	return fmt.Sprintf("<Success(%v)>", v)
}

// IsSuccess matches any Success.
func IsSuccess[T any]() core.Matcher[container.Try[T]] {
	return IsSuccessMatching(core.Anything[T]())
}

// IsSuccessMatching matches a Success whose value satisfies m.
//
//	describe:  a <Success> with content matching <desc of m>
//	mismatch:  Expected a <Success> but found <Failure(*errors.errorString)>
//	           Expected a <Success> with content matching `a value less than <36>` but <1337> was greater than <36>
func IsSuccessMatching[T any](m core.Matcher[T]) core.Matcher[container.Try[T]] {
	core.MustMatcher(m, "try", "IsSuccessMatching")

	return core.Build(
		func(t container.Try[T]) bool {
			v, ok := t.Get()

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("a <Success> with content matching ").AppendDescriptionOf(m)
		},
		func(t container.Try[T], d core.Description) {
			v, ok := t.Get()
			if !ok {
				d.AppendText("Expected a <Success> but found ").AppendText(failureOf(t.Cause()))

				return
			}
			d.AppendText("Expected a <Success> with content matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(v, d)
		},
	)
}

// IsFailure matches any Failure.
//
//	mismatch:  Expected a <Failure> but found <Success(foo)>
func IsFailure[T any]() core.Matcher[container.Try[T]] {
	return core.Build(
		container.Try[T].IsFailure,
		func(d core.Description) { d.AppendText("a <Failure>") },
		func(t container.Try[T], d core.Description) {
			v, _ := t.Get()
			d.AppendText("Expected a <Failure> but found ").AppendText(successOf(v))
		},
	)
}

// IsFailureOf matches a Failure whose cause chain holds an error of type E
// (errors.As semantics, so wrapped causes count).
//
//	describe:  <Failure(*fs.PathError)>
//	mismatch:  Expected <Failure()> but found <Success(foo)>
//	           Expected <Failure(*fs.PathError)> but found <Failure(*errors.errorString)>
func IsFailureOf[T any, E error]() core.Matcher[container.Try[T]] {
	want := "<Failure(" + core.TypeNameOf[E]() + ")>"

	return core.Build(
		func(t container.Try[T]) bool {
			var target E

			return t.IsFailure() && errors.As(t.Cause(), &target)
		},
		func(d core.Description) { d.AppendText(want) },
		func(t container.Try[T], d core.Description) {
			if t.IsSuccess() {
				v, _ := t.Get()
				d.AppendText("Expected <Failure()> but found ").AppendText(successOf(v))

				return
			}
			d.AppendText("Expected ").AppendText(want).
				AppendText(" but found ").AppendText(failureOf(t.Cause()))
		},
	)
}

// IsFailureMatching matches a Failure whose cause satisfies m.
//
//	describe:  a <Failure> with cause matching <desc of m>
//	mismatch:  Expected a <Failure> but found <Success(foo)>
//	           Expected a <Failure> with cause matching `d` but <mismatch of m>
func IsFailureMatching[T any](m core.Matcher[error]) core.Matcher[container.Try[T]] {
	core.MustMatcher(m, "try", "IsFailureMatching")

	return core.Build(
		func(t container.Try[T]) bool {
			return t.IsFailure() && m.Matches(t.Cause())
		},
		func(d core.Description) {
			d.AppendText("a <Failure> with cause matching ").AppendDescriptionOf(m)
		},
		func(t container.Try[T], d core.Description) {
			if t.IsSuccess() {
				v, _ := t.Get()
				d.AppendText("Expected a <Failure> but found ").AppendText(successOf(v))

				return
			}
			d.AppendText("Expected a <Failure> with cause matching `").
				AppendDescriptionOf(m).
				AppendText("` but ")
			m.DescribeMismatch(t.Cause(), d)
		},
	)
}
