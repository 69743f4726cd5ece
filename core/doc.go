// SPDX-License-Identifier: MIT

// Package core provides the matcher primitive shared by every container
// adapter in this module: a typed Matcher, the Description sink it writes
// into, and a single generic constructor (Build) that wires a predicate, an
// expectation and a mismatch explanation into one immutable value.
//
// 🚀 What is a Matcher?
//
//	A Matcher[T] answers three questions about an actual value of type T:
//	  • Matches(actual)                — does it satisfy the expectation?
//	  • DescribeTo(d)                  — what was expected?
//	  • DescribeMismatch(actual, d)    — why exactly did THIS value fail?
//
// Matchers are stateless. Build them once, reuse them across tests and
// goroutines; the same matcher evaluated twice on the same value yields the
// same verdict and the same text.
//
// ✨ Key features:
//   - Build[T] — one constructor for the whole triad, no per-type boilerplate
//   - Evaluate — the framework contract: Matches once, DescribeMismatch only
//     on failure, always with the original actual value
//   - Erase    — runtime type-checked view for dynamically typed callers
//     (Gomega); ill-typed values never reach the typed predicate
//   - Base matchers with hamcrest phrasing: Anything, EqualTo, Is, Not,
//     LessThan/GreaterThan (+OrEqualTo), AllOf, AnyOf, Satisfies,
//     EmptyString, HasLen
//
// Formatting rules (bit-exact, relied upon by existing expectations):
//
//	nil              → nil
//	"foo"            → "foo"           (Go-quoted)
//	[]T{a, b}        → <[a, b]>
//	anything else    → <%v>
//	value lists      → [<1>,<2>]       (open "[", separator ",", close "]")
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matchers/core"
//
//	positive := core.Build(
//		func(n int) bool { return n > 0 },
//		func(d core.Description) { d.AppendText("a positive number") },
//		func(n int, d core.Description) { d.AppendValue(n).AppendText(" is not positive") },
//	)
//
//	ok, why := core.Evaluate(positive, -3)
//	// ok == false, why == "<-3> is not positive"
//
// Errors:
//
//	ErrTypeMismatch - an untyped caller passed a value of the wrong type.
package core
