// SPDX-License-Identifier: MIT

package future

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// Fixed texts for the state-only matchers.
const (
	notCancelledText = "Expected a cancelled Future but it was not"
	notCompletedText = "Expected a completed Future but it was not"
	notFailedText    = "Expected a failed Future but it was not"
)

// stateMatcher builds a matcher over a non-blocking state query whose
// description and mismatch are the same fixed text.
func stateMatcher[T any](test func(*container.Future[T]) bool, text string) core.Matcher[*container.Future[T]] {
	return core.Build(
		func(f *container.Future[T]) bool { return f != nil && test(f) },
		func(d core.Description) { d.AppendText(text) },
		func(_ *container.Future[T], d core.Description) { d.AppendText(text) },
	)
}

// IsCancelled matches a cancelled Future.
//
//	mismatch:  Expected a cancelled Future but it was not
func IsCancelled[T any]() core.Matcher[*container.Future[T]] {
	return stateMatcher((*container.Future[T]).IsCancelled, notCancelledText)
}

// IsCompleted matches a Future in any terminal state (success, failure or
// cancellation).
//
//	mismatch:  Expected a completed Future but it was not
func IsCompleted[T any]() core.Matcher[*container.Future[T]] {
	return stateMatcher((*container.Future[T]).IsCompleted, notCompletedText)
}

// IsFailed matches a Future completed with a cause (cancellation included).
//
//	mismatch:  Expected a failed Future but it was not
func IsFailed[T any]() core.Matcher[*container.Future[T]] {
	return stateMatcher(func(f *container.Future[T]) bool {
		t, ok := f.Peek()

		return ok && t.IsFailure()
	}, notFailedText)
}

// IsCompletedMatching matches a successfully completed Future whose value
// satisfies m.
//
//	describe:  a completed Future with content matching <desc of m>
//	mismatch:  Expected a completed Future but it was not
//	           Expected a completed Future with content matching `is <1>` but found <Failure(*errors.errorString)>
//	           Expected a completed Future with content matching `is <1>` but was <2>
func IsCompletedMatching[T any](m core.Matcher[T]) core.Matcher[*container.Future[T]] {
	core.MustMatcher(m, "future", "IsCompletedMatching")

	peek := func(f *container.Future[T]) (container.Try[T], bool) {
		if f == nil {
			return container.Try[T]{}, false
		}

		return f.Peek()
	}
	prefix := func(d core.Description) {
		d.AppendText("Expected a completed Future with content matching `").
			AppendDescriptionOf(m).
			AppendText("` but ")
	}

	return core.Build(
		func(f *container.Future[T]) bool {
			t, ok := peek(f)
			if !ok {
				return false
			}
			v, ok := t.Get()

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("a completed Future with content matching ").AppendDescriptionOf(m)
		},
		func(f *container.Future[T], d core.Description) {
			t, ok := peek(f)
			if !ok {
				d.AppendText(notCompletedText)

				return
			}
			prefix(d)
			v, ok := t.Get()
			if !ok {
				d.AppendText("found <Failure(" + core.TypeName(t.Cause()) + ")>")

				return
			}
			m.DescribeMismatch(v, d)
		},
	)
}
