package lambda

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

// Task wraps a deferred asynchronous computation parameterized by a reject
// and a resolve callback. Nothing runs at construction or composition time;
// only Fork evaluates the computation, and every Fork re-runs it. A
// well-behaved computation calls exactly one of the two callbacks exactly
// once; the container does not enforce this.
//
// The container introduces no suspension of its own: Fork invokes the run
// function on the calling goroutine, and asynchrony only exists where the
// wrapped computation itself defers.
type Task[T any] struct {
	run func(reject func(error), resolve func(T))
}

// NewTask creates a Task from a two-callback computation, without invoking
// it.
func NewTask[T any](run func(reject func(error), resolve func(T))) Task[T] {
	return Task[T]{run: run}
}

// ResolveTask creates a Task that always resolves with value.
func ResolveTask[T any](value T) Task[T] {
	return Task[T]{run: func(_ func(error), resolve func(T)) {
		resolve(value)
	}}
}

// RejectTask creates a Task that always rejects with err.
func RejectTask[T any](err error) Task[T] {
	return Task[T]{run: func(reject func(error), _ func(T)) {
		reject(err)
	}}
}

// TaskFromFunc creates a Task from an ordinary fallible function. The
// function runs synchronously on Fork.
func TaskFromFunc[T any](fn func() (T, error)) Task[T] {
	return Task[T]{run: func(reject func(error), resolve func(T)) {
		value, err := fn()
		if err != nil {
			reject(err)
			return
		}
		resolve(value)
	}}
}

// TaskFromFuncCtx creates a Task honoring cooperative cancellation: an
// already-cancelled context rejects without invoking fn.
func TaskFromFuncCtx[T any](ctx context.Context, fn func(context.Context) (T, error)) Task[T] {
	return Task[T]{run: func(reject func(error), resolve func(T)) {
		if err := ctx.Err(); err != nil {
			reject(err)
			return
		}
		value, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}
		resolve(value)
	}}
}

// Fork evaluates the wrapped computation, invoking resolve with the success
// payload or reject with the failure payload. A panic out of the computation
// is recovered and normalized into the reject channel. Each Fork re-runs the
// computation from scratch.
func (t Task[T]) Fork(reject func(error), resolve func(T)) {
	defer func() {
		if r := recover(); r != nil {
			reject(asError(r))
		}
	}()
	t.run(reject, resolve)
}

// Await forks the Task and blocks until it settles, returning the outcome
// as an ordinary (value, error) pair.
func (t Task[T]) Await() (T, error) {
	type settled struct {
		value T
		err   error
	}
	// Buffered past the well-behaved case so a misbehaving computation that
	// fires both callbacks cannot block.
	ch := make(chan settled, 2)
	t.Fork(
		func(err error) { ch <- settled{err: err} },
		func(value T) { ch <- settled{value: value} },
	)
	s := <-ch
	return s.value, s.err
}

// Map returns a new Task that applies fn to a successful resolution. A
// rejection short-circuits and fn is never invoked.
func (t Task[T]) Map(fn func(T) T) Functor[T] {
	return MapTask(t, fn)
}

// MapTask returns a new Task that runs the original and transforms its
// resolution.
func MapTask[T, U any](t Task[T], fn func(T) U) Task[U] {
	return Task[U]{run: func(reject func(error), resolve func(U)) {
		t.Fork(reject, func(value T) {
			resolve(fn(value))
		})
	}}
}

// FlatMapTask returns a new Task that, on the original's resolution, builds
// a second Task from the value and forks that, forwarding its outcome. On
// rejection the second Task is never forked.
func FlatMapTask[T, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return Task[U]{run: func(reject func(error), resolve func(U)) {
		t.Fork(reject, func(value T) {
			fn(value).Fork(reject, resolve)
		})
	}}
}

// ApTask applies the function resolved by one Task to the value resolved by
// another, via FlatMapTask.
func ApTask[T, U any](tf Task[func(T) U], tv Task[T]) Task[U] {
	return FlatMapTask(tf, func(fn func(T) U) Task[U] {
		return MapTask(tv, fn)
	})
}

// MergeTasks forks all tasks concurrently. It resolves with every result in
// input order once all tasks resolve, or rejects with the first rejection
// observed; completion timing, not argument order, breaks ties.
func MergeTasks[T any](ts ...Task[T]) Task[[]T] {
	return Task[[]T]{run: func(reject func(error), resolve func([]T)) {
		results := make([]T, len(ts))
		g := new(errgroup.Group)
		for i, t := range ts {
			i, t := i, t
			g.Go(func() error {
				value, err := t.Await()
				if err != nil {
					return err
				}
				results[i] = value
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			reject(err)
			return
		}
		resolve(results)
	}}
}

// RaceTasks forks all tasks concurrently and settles with whichever settles
// first, resolution or rejection alike. Racing zero tasks rejects with
// ErrNothingToRace.
func RaceTasks[T any](ts ...Task[T]) Task[T] {
	return Task[T]{run: func(reject func(error), resolve func(T)) {
		if len(ts) == 0 {
			reject(ErrNothingToRace)
			return
		}

		type settled struct {
			value T
			err   error
		}
		first := make(chan settled, 1)
		for _, t := range ts {
			t := t
			go func() {
				value, err := t.Await()
				select {
				case first <- settled{value: value, err: err}:
				default:
				}
			}()
		}
		s := <-first
		if s.err != nil {
			reject(s.err)
			return
		}
		resolve(s.value)
	}}
}

// RetryTask re-forks the task on rejection according to the backoff policy,
// settling with the first resolution or the rejection that exhausts the
// policy.
func RetryTask[T any](t Task[T], policy backoff.BackOff) Task[T] {
	return Task[T]{run: func(reject func(error), resolve func(T)) {
		value, err := backoff.RetryWithData(t.Await, policy)
		if err != nil {
			reject(err)
			return
		}
		resolve(value)
	}}
}

// TaskWithTimeout bounds the task's evaluation: if it has not settled within
// d, the returned Task rejects with context.DeadlineExceeded. The underlying
// computation is not aborted; cancellation stays the caller's concern.
func TaskWithTimeout[T any](t Task[T], d time.Duration) Task[T] {
	return Task[T]{run: func(reject func(error), resolve func(T)) {
		ctx, cancel := context.WithTimeout(context.Background(), d)
		defer cancel()

		type settled struct {
			value T
			err   error
		}
		ch := make(chan settled, 1)
		go func() {
			value, err := t.Await()
			ch <- settled{value: value, err: err}
		}()

		select {
		case s := <-ch:
			if s.err != nil {
				reject(s.err)
				return
			}
			resolve(s.value)
		case <-ctx.Done():
			reject(ctx.Err())
		}
	}}
}
