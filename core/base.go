// SPDX-License-Identifier: MIT

package core

// wasValue is the fallback mismatch of the generic matchers: "was <actual>".
func wasValue[T any](actual T, d Description) {
	d.AppendText("was ").AppendValue(actual)
}

// Anything matches every value. It is the default sub-matcher of every
// "…Matching" adapter when none is given.
func Anything[T any]() Matcher[T] {
	return Build(
		func(T) bool { return true },
		func(d Description) { d.AppendText("ANYTHING") },
		wasValue[T],
	)
}

// EqualTo matches values deeply equal (see Equal) to expected.
//
//	describe:  <1>
//	mismatch:  was <36>
func EqualTo[T any](expected T) Matcher[T] {
	return Build(
		func(actual T) bool { return Equal(actual, expected) },
		func(d Description) { d.AppendValue(expected) },
		wasValue[T],
	)
}

// Is decorates m with "is " for readability; matching and mismatch text are
// delegated unchanged.
func Is[T any](m Matcher[T]) Matcher[T] {
	mustMatcher(m, "Is")

	return Build(
		m.Matches,
		func(d Description) { d.AppendText("is ").AppendDescriptionOf(m) },
		m.DescribeMismatch,
	)
}

// IsValue is shorthand for Is(EqualTo(expected)): "is <1>".
func IsValue[T any](expected T) Matcher[T] {
	return Is(EqualTo(expected))
}

// Not inverts m.
//
//	describe:  not <desc of m>
//	mismatch:  was <actual>
func Not[T any](m Matcher[T]) Matcher[T] {
	mustMatcher(m, "Not")

	return Build(
		func(actual T) bool { return !m.Matches(actual) },
		func(d Description) { d.AppendText("not ").AppendDescriptionOf(m) },
		wasValue[T],
	)
}

// Satisfies adapts a plain predicate; description is used verbatim.
// Panics on nil pred.
func Satisfies[T any](description string, pred func(T) bool) Matcher[T] {
	if pred == nil {
		panic("core: Satisfies(nil predicate)")
	}

	return Build(
		pred,
		func(d Description) { d.AppendText(description) },
		wasValue[T],
	)
}

// AllOf matches when every matcher matches. The mismatch names the first
// failing matcher followed by its own explanation:
//
//	describe:  (a value greater than <1> and a value less than <3>)
//	mismatch:  a value less than <3> <7> was greater than <3>
func AllOf[T any](ms ...Matcher[T]) Matcher[T] {
	for _, m := range ms {
		mustMatcher(m, "AllOf")
	}

	return Build(
		func(actual T) bool {
			for _, m := range ms {
				if !m.Matches(actual) {
					return false
				}
			}

			return true
		},
		func(d Description) { d.AppendList("(", " and ", ")", selfDescribing(ms)) },
		func(actual T, d Description) {
			for _, m := range ms {
				if !m.Matches(actual) {
					d.AppendDescriptionOf(m).AppendText(" ")
					m.DescribeMismatch(actual, d)

					return
				}
			}
			wasValue(actual, d)
		},
	)
}

// AnyOf matches when at least one matcher matches. An empty AnyOf never
// matches.
func AnyOf[T any](ms ...Matcher[T]) Matcher[T] {
	for _, m := range ms {
		mustMatcher(m, "AnyOf")
	}

	return Build(
		func(actual T) bool {
			for _, m := range ms {
				if m.Matches(actual) {
					return true
				}
			}

			return false
		},
		func(d Description) { d.AppendList("(", " or ", ")", selfDescribing(ms)) },
		wasValue[T],
	)
}

// selfDescribing widens a matcher slice for Description.AppendList.
func selfDescribing[T any](ms []Matcher[T]) []SelfDescribing {
	out := make([]SelfDescribing, len(ms))
	for i, m := range ms {
		out[i] = m
	}

	return out
}

// mustMatcher panics on a nil sub-matcher; fn names the calling constructor.
func mustMatcher[T any](m Matcher[T], fn string) {
	MustMatcher(m, "core", fn)
}

// MustMatcher is the exported guard used by the container adapters:
// it panics with "pkg: Fn(nil matcher)" when m is nil.
func MustMatcher[T any](m Matcher[T], pkg, fn string) {
	if m == nil {
		panic(pkg + ": " + fn + "(nil matcher)")
	}
}
