// SPDX-License-Identifier: MIT

package core

import "unicode/utf8"

// EmptyString matches "".
func EmptyString() Matcher[string] {
	return Build(
		func(s string) bool { return s == "" },
		func(d Description) { d.AppendText("an empty string") },
		wasValue[string],
	)
}

// HasLen matches strings of exactly n runes.
//
//	describe:  a string with length <3>
//	mismatch:  length was <4>
func HasLen(n int) Matcher[string] {
	return Build(
		func(s string) bool { return utf8.RuneCountInString(s) == n },
		func(d Description) { d.AppendText("a string with length ").AppendValue(n) },
		func(s string, d Description) {
			d.AppendText("length was ").AppendValue(utf8.RuneCountInString(s))
		},
	)
}
