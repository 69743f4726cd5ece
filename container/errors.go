// SPDX-License-Identifier: MIT

package container

import "errors"

var (
	// ErrPanicked wraps a value recovered from a panicking TryOf function.
	ErrPanicked = errors.New("container: function panicked")

	// ErrNotReady is returned by Future.Await when its context ends first.
	ErrNotReady = errors.New("container: future not completed")
)
