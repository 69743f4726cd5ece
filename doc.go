// Package matchers is a library of composable assertion predicates for
// container values: optionals, success/failure outcomes, left/right unions,
// sequences, sets, maps, lazy values, futures, tuples and validations.
//
// 🚀 What is a matcher?
//
//	A matcher answers "does this value satisfy P?" and, when it does not,
//	explains exactly why:
//
//		Expected: Value that contains value matching is <1>
//		     but: was <2>
//
// ✨ Layout:
//
//	core/        — Matcher[T], Description, Build, Evaluate, base matchers
//	container/   — Option, Try, Either, Lazy, Future, Tuple, Validation, Set
//	option/      — IsDefined, IsDefinedMatching, IsEmpty
//	try/         — IsSuccess, IsFailure, IsFailureOf, …Matching variants
//	either/      — IsRight, IsLeft, …Matching variants
//	seq/         — length, containment, order, uniqueness over []T
//	set/         — ContainsSubSet, IsSubSetOf, IsEmpty, HasSize
//	mapping/     — ContainsKeys, ContainsValues, Contains, ContainsEntryMatching
//	lazy/        — IsEvaluated, IsEvaluatedMatching (never forces)
//	future/      — IsCompleted, IsCancelled, IsFailed (never blocks)
//	tuple/       — HasArity, HasArityMatching, HasElementAt
//	validation/  — IsValid, IsInvalid, …Matching variants
//	expect/      — testify-backed That / Must for *testing.T
//	gmatch/      — Gomega bridge in both directions
//
// Every "…Matching" constructor takes a sub-matcher; the plain form is the
// same matcher with core.Anything. Mismatch texts embed the sub-matcher's
// own description and mismatch verbatim.
//
// ⚙️ Usage:
//
//	expect.That(t, lookup("id"), option.IsDefinedMatching(core.IsValue(42)))
//	Expect(result).To(gmatch.Adapt(try.IsSuccess[int]()))
//
//	go get github.com/katalvlaran/matchers
package matchers
