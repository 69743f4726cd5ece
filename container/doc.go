// SPDX-License-Identifier: MIT

// Package container provides the small immutable container values the
// matcher adapters are asserted against: Option, Try, Either, Lazy, Future,
// Tuple, Validation and an insertion-ordered Set.
//
// Go has no standard monadic types, so the shapes live here, each exposing
// only the capabilities a matcher needs:
//
//	Option[T]          Get() (T, bool), IsDefined(), IsEmpty()
//	Try[T]             Get() (T, bool), Cause() error, IsSuccess(), IsFailure()
//	Either[L, R]       LeftValue() (L, bool), RightValue() (R, bool)
//	Lazy[T]            Peek() (T, bool), IsEvaluated()      — never forces
//	Future[T]          Peek() (Try[T], bool), IsCompleted(), IsCancelled()
//	                                                         — never blocks
//	Tuple              Arity(), At(i)
//	Validation[E, T]   Get() (T, bool), Errors() []E, IsValid(), IsInvalid()
//	Set[T]             Contains(v), Len(), Items()          — insertion order
//
// Every type implements fmt.Stringer with a stable rendering (Some(1),
// Failure(boom), Left(foo), (1, 2), …) used verbatim in mismatch texts.
//
// Lazy and Future are the only types with internal state; both are safe for
// concurrent use and both can be probed without side effects.
//
// Errors:
//
//	ErrPanicked   - TryOf recovered a panic from the wrapped function.
//	ErrNotReady   - Future.Await was cancelled before completion.
package container
