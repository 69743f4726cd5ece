// SPDX-License-Identifier: MIT

// Package try provides matchers for container.Try, the success/failure
// outcome of a computation.
//
//	try.IsSuccess[int]()                           Success(_)
//	try.IsSuccessMatching(core.LessThan(36))       Success(v) with v < 36
//	try.IsFailure[int]()                           Failure(_)
//	try.IsFailureOf[int, *fs.PathError]()          Failure with a *fs.PathError in its chain
//	try.IsFailureMatching[int](m)                  Failure whose cause satisfies m
//
// Failure causes are reported by their Go type ("<Failure(*fs.PathError)>"),
// successes by their value ("<Success(foo)>").
package try
