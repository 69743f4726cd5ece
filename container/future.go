// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"fmt"
	"sync"
)

// futureState is the lifecycle of a Future: pending → one terminal state.
type futureState uint8

const (
	futurePending futureState = iota
	futureSucceeded
	futureFailed
	futureCancelled
)

// Future is the result of a computation running on its own goroutine.
//
// All queries except Await are non-blocking. A cancelled Future counts as
// completed, with context.Canceled as its cause.
type Future[T any] struct {
	mu     sync.Mutex
	done   chan struct{}
	cancel context.CancelFunc
	state  futureState
	value  T
	err    error
}

// Go starts fn on a new goroutine. The context passed to fn is cancelled by
// Cancel and released once the Future completes.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic("container: Go(nil)")
	}
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}

	go func() {
		t := TryOf(func() (T, error) { return fn(ctx) })
		v, _ := t.Get()
		f.complete(v, t.Cause())
	}()

	return f
}

// Completed returns a Future already succeeded with v.
func Completed[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), cancel: func() {}}
	f.complete(v, nil)

	return f
}

// Failed returns a Future already failed with err. Panics on nil err.
func Failed[T any](err error) *Future[T] {
	if err == nil {
		panic("container: Failed(nil)")
	}
	f := &Future[T]{done: make(chan struct{}), cancel: func() {}}
	var zero T
	f.complete(zero, err)

	return f
}

// complete moves a pending Future to its terminal state; later calls lose.
func (f *Future[T]) complete(v T, err error) bool {
	f.mu.Lock()
	if f.state != futurePending {
		f.mu.Unlock()

		return false
	}
	if err != nil {
		f.state, f.err = futureFailed, err
	} else {
		f.state, f.value = futureSucceeded, v
	}
	close(f.done)
	f.mu.Unlock()
	f.cancel()

	return true
}

// Cancel stops a pending Future. Returns false if it had already completed.
func (f *Future[T]) Cancel() bool {
	f.mu.Lock()
	if f.state != futurePending {
		f.mu.Unlock()

		return false
	}
	f.state, f.err = futureCancelled, context.Canceled
	close(f.done)
	f.mu.Unlock()
	f.cancel()

	return true
}

// IsCompleted reports whether f reached a terminal state. Non-blocking.
func (f *Future[T]) IsCompleted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state != futurePending
}

// IsCancelled reports whether f was cancelled. Non-blocking.
func (f *Future[T]) IsCancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state == futureCancelled
}

// Peek returns the outcome as a Try if f has completed. Non-blocking: ok is
// false while pending.
func (f *Future[T]) Peek() (Try[T], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case futurePending:
		return Try[T]{}, false
	case futureSucceeded:
		return Success(f.value), true
	default:
		return Failure[T](f.err), true
	}
}

// Done is closed when f completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until f completes or ctx ends. Matchers never call it.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		t, _ := f.Peek()
		v, _ := t.Get()

		return v, t.Cause()
	case <-ctx.Done():
		var zero T

		return zero, fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// String renders Future(?) while pending, Future(Success(v)),
// Future(Failure(msg)) or Future(Cancelled).
func (f *Future[T]) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case futureSucceeded:
		return fmt.Sprintf("Future(Success(%v))", f.value)
	case futureFailed:
		return fmt.Sprintf("Future(Failure(%v))", f.err)
	case futureCancelled:
		return "Future(Cancelled)"
	default:
		return "Future(?)"
	}
}
