// SPDX-License-Identifier: MIT

package container

import "fmt"

// side tags an Either. The zero value is neither side: a degenerate Either
// that the accessors report as empty on both sides instead of panicking.
type side uint8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// Either holds a value of one of two types: Left (by convention the error
// path) or Right (the success path).
type Either[L, R any] struct {
	left  L
	right R
	side  side
}

// Left returns an Either on the left side.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, side: sideLeft}
}

// Right returns an Either on the right side.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, side: sideRight}
}

// IsLeft reports whether e is a Left.
func (e Either[L, R]) IsLeft() bool { return e.side == sideLeft }

// IsRight reports whether e is a Right.
func (e Either[L, R]) IsRight() bool { return e.side == sideRight }

// LeftValue is the guarded left projection.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, e.side == sideLeft
}

// RightValue is the guarded right projection.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.side == sideRight
}

// String renders Left(v), Right(v) or Either() for the zero value.
func (e Either[L, R]) String() string {
	switch e.side {
	case sideLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case sideRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Either()"
	}
}
