// SPDX-License-Identifier: MIT

package container_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchers/container"
)

// TestOption covers presence and rendering.
func TestOption(t *testing.T) {
	some := container.Some(1)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, some.IsDefined())
	assert.Equal(t, "Some(1)", some.String())

	none := container.None[int]()
	assert.True(t, none.IsEmpty())
	assert.Equal(t, "None", none.String())

	m := map[string]int{"a": 1}
	got, found := m["b"]
	assert.True(t, container.OptionOf(got, found).IsEmpty())
}

// TestTryOf covers values, errors and recovered panics.
func TestTryOf(t *testing.T) {
	ok := container.TryOf(func() (int, error) { return 1, nil })
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "Success(1)", ok.String())

	boom := errors.New("boom")
	failed := container.TryOf(func() (int, error) { return 0, boom })
	assert.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Cause(), boom)
	assert.Equal(t, "Failure(boom)", failed.String())

	panicked := container.TryOf(func() (int, error) { panic("bad input") })
	require.True(t, panicked.IsFailure())
	assert.ErrorIs(t, panicked.Cause(), container.ErrPanicked)
	assert.Contains(t, panicked.Cause().Error(), "bad input")

	assert.PanicsWithValue(t, "container: Failure(nil cause)", func() { container.Failure[int](nil) })
}

// TestEither covers both sides and the degenerate zero value.
func TestEither(t *testing.T) {
	r := container.Right[string](36)
	v, ok := r.RightValue()
	require.True(t, ok)
	assert.Equal(t, 36, v)
	_, ok = r.LeftValue()
	assert.False(t, ok)
	assert.Equal(t, "Right(36)", r.String())

	l := container.Left[string, int]("foo")
	assert.True(t, l.IsLeft())
	assert.Equal(t, "Left(foo)", l.String())

	var zero container.Either[string, int]
	assert.False(t, zero.IsLeft())
	assert.False(t, zero.IsRight())
	assert.Equal(t, "Either()", zero.String())
}

// TestLazyForcesOnce runs Get from many goroutines.
func TestLazyForcesOnce(t *testing.T) {
	var calls atomic.Int32
	l := container.NewLazy(func() int {
		calls.Add(1)

		return 42
	})
	assert.False(t, l.IsEvaluated())
	assert.Equal(t, "Lazy(?)", l.String())
	_, ok := l.Peek()
	assert.False(t, ok)

	const num = 50
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, l.Get())
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	assert.True(t, l.IsEvaluated())
	assert.Equal(t, "Lazy(42)", l.String())
	assert.True(t, container.Evaluated("x").IsEvaluated())
}

// TestFutureLifecycle covers success, failure, cancellation and Await.
func TestFutureLifecycle(t *testing.T) {
	ctx := context.Background()

	f := container.Go(ctx, func(context.Context) (int, error) { return 7, nil })
	v, err := f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, f.IsCompleted())
	assert.False(t, f.Cancel())
	assert.Equal(t, "Future(Success(7))", f.String())

	boom := errors.New("boom")
	failed := container.Go(ctx, func(context.Context) (int, error) { return 0, boom })
	_, err = failed.Await(ctx)
	assert.ErrorIs(t, err, boom)

	blocked := container.Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()

		return 0, ctx.Err()
	})
	assert.False(t, blocked.IsCompleted())
	assert.Equal(t, "Future(?)", blocked.String())
	require.True(t, blocked.Cancel())
	assert.True(t, blocked.IsCancelled())
	assert.True(t, blocked.IsCompleted())
	assert.Equal(t, "Future(Cancelled)", blocked.String())
	_, err = blocked.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFutureAwaitTimeout reports ErrNotReady when the caller gives up.
func TestFutureAwaitTimeout(t *testing.T) {
	f := container.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()

		return 0, ctx.Err()
	})
	defer f.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, container.ErrNotReady)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.IsCompleted())
}

// TestFuturePanicBecomesFailure checks the TryOf wiring inside Go.
func TestFuturePanicBecomesFailure(t *testing.T) {
	f := container.Go(context.Background(), func(context.Context) (int, error) { panic("boom") })
	<-f.Done()

	tr, ok := f.Peek()
	require.True(t, ok)
	assert.ErrorIs(t, tr.Cause(), container.ErrPanicked)
}

// TestTuple covers arity and positional access.
func TestTuple(t *testing.T) {
	tp := container.Triple(1, "a", true)
	assert.Equal(t, 3, tp.Arity())
	v, ok := tp.At(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = tp.At(3)
	assert.False(t, ok)
	_, ok = tp.At(-1)
	assert.False(t, ok)
	assert.Equal(t, "(1, a, true)", tp.String())
	assert.Equal(t, 0, container.Tuple{}.Arity())
}

// TestTupleOfCopies checks that the caller's slice is not aliased.
func TestTupleOfCopies(t *testing.T) {
	src := []any{1, 2}
	tp := container.TupleOf(src...)
	src[0] = 9

	v, _ := tp.At(0)
	assert.Equal(t, 1, v)
}

// TestValidationCombine accumulates errors of both sides.
func TestValidationCombine(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	ok := container.Combine(container.Valid[string](1), container.Valid[string](2), sum)
	v, valid := ok.Get()
	require.True(t, valid)
	assert.Equal(t, 3, v)
	assert.Nil(t, ok.Errors())
	assert.Equal(t, "Valid(3)", ok.String())

	bad := container.Combine(container.Invalid[string, int]("a"), container.Invalid[string, int]("b", "c"), sum)
	assert.True(t, bad.IsInvalid())
	assert.Equal(t, []string{"a", "b", "c"}, bad.Errors())
	assert.Equal(t, "Invalid(a, b, c)", bad.String())

	assert.Panics(t, func() { container.Invalid[string, int]() })
}

// TestSet covers insertion order and immutability of Add.
func TestSet(t *testing.T) {
	s := container.NewSet(3, 1, 3, 2)
	assert.Equal(t, []int{3, 1, 2}, s.Items())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "Set(3, 1, 2)", s.String())

	grown := s.Add(4)
	assert.True(t, grown.Contains(4))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, s, s.Add(1))
}
