// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Lazy is a value computed at most once, on first Get.
//
// IsEvaluated and Peek observe the current state without forcing the
// computation, which is what lets matchers inspect a Lazy side-effect free.
type Lazy[T any] struct {
	once  sync.Once
	fn    func() T
	value T
	done  atomic.Bool // set after value is written
}

// NewLazy defers fn until the first Get. Panics on nil fn.
func NewLazy[T any](fn func() T) *Lazy[T] {
	if fn == nil {
		panic("container: NewLazy(nil)")
	}

	return &Lazy[T]{fn: fn}
}

// Evaluated returns a Lazy that is already evaluated to v.
func Evaluated[T any](v T) *Lazy[T] {
	l := &Lazy[T]{value: v}
	l.once.Do(func() {})
	l.done.Store(true)

	return l
}

// Get forces the computation (once) and returns its value.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.fn()
		l.fn = nil
		l.done.Store(true)
	})

	return l.value
}

// IsEvaluated reports whether the value has been computed. Never forces.
func (l *Lazy[T]) IsEvaluated() bool {
	return l.done.Load()
}

// Peek returns the computed value and true, or the zero T and false while
// unevaluated. Never forces.
func (l *Lazy[T]) Peek() (T, bool) {
	if !l.done.Load() {
		var zero T

		return zero, false
	}

	return l.value, true
}

// String renders Lazy(v) once evaluated and Lazy(?) before.
func (l *Lazy[T]) String() string {
	if v, ok := l.Peek(); ok {
		return fmt.Sprintf("Lazy(%v)", v)
	}

	return "Lazy(?)"
}
