// SPDX-License-Identifier: MIT

package core

// SelfDescribing is implemented by anything that can explain itself into a
// Description. Every Matcher is SelfDescribing.
type SelfDescribing interface {
	// DescribeTo appends the positive expectation ("a value less than <36>").
	DescribeTo(d Description)
}

// Matcher is an immutable predicate over values of type T together with the
// text needed to report a failure.
//
// Contract:
//   - Matches is a pure function of actual.
//   - DescribeMismatch is meant to be called only after Matches returned
//     false, but it must never panic for any T.
//   - DescribeMismatch receives the original actual value, never an unwrapped
//     projection of it.
type Matcher[T any] interface {
	SelfDescribing

	// Matches reports whether actual satisfies the expectation.
	Matches(actual T) bool

	// DescribeMismatch appends why actual did not satisfy the expectation.
	DescribeMismatch(actual T, d Description)
}

// Description is an append-only text sink. All Append* methods return the
// receiver so calls can be chained.
type Description interface {
	// AppendText appends literal text.
	AppendText(text string) Description

	// AppendValue appends a formatted value (see package doc for the rules).
	AppendValue(value any) Description

	// AppendValueList appends open, then every value formatted and joined by
	// sep, then close. An empty list renders as open+close.
	AppendValueList(open, sep, close string, values []any) Description

	// AppendDescriptionOf appends the self-description of s verbatim.
	AppendDescriptionOf(s SelfDescribing) Description

	// AppendList appends open, then the self-descriptions joined by sep,
	// then close.
	AppendList(open, sep, close string, items []SelfDescribing) Description

	// String returns everything appended so far.
	String() string
}

// Default tokens used when rendering value lists.
const (
	ListOpen      = "["
	ListSeparator = ","
	ListClose     = "]"
)
