// Package concurrency provides Future, the eager promise-style counterpart
// to lambda.Task, and the bridges between the two. A Future starts running
// when created and settles exactly once; a Task is inert until forked and
// re-runs on every fork. FromTask and ToTask convert between the two worlds
// preserving resolve/reject semantics exactly.
package concurrency

import (
	"context"
	"sync"

	"github.com/MeetMartin/lambda"
)

// Future represents an asynchronous computation already in flight.
type Future[T any] struct {
	result lambda.Either[T]
	done   chan struct{}
}

// NewFuture starts fn on its own goroutine and returns its Future.
func NewFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.result = lambda.Try(fn)
		close(f.done)
	}()
	return f
}

// NewFutureWithContext starts fn with a context for cooperative
// cancellation.
func NewFutureWithContext[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.result = lambda.TryFunc(fn(ctx))
		close(f.done)
	}()
	return f
}

// Await blocks until the future settles.
func (f *Future[T]) Await() lambda.Either[T] {
	<-f.done
	return f.result
}

// AwaitContext blocks until the future settles or the context is cancelled.
// Cancellation abandons the wait; the underlying computation keeps running.
func (f *Future[T]) AwaitContext(ctx context.Context) lambda.Either[T] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return lambda.Failure[T](ctx.Err())
	}
}

// IsDone returns true if the future has settled.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Poll returns the outcome if settled, Absent otherwise.
func (f *Future[T]) Poll() lambda.Maybe[lambda.Either[T]] {
	if f.IsDone() {
		return lambda.Present(f.result)
	}
	return lambda.Absent[lambda.Either[T]]()
}

// Map transforms the future's resolution.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return NewFuture(func() (U, error) {
		result := f.Await()
		if result.IsFailure() {
			var zero U
			return zero, result.UnwrapFailure()
		}
		return fn(result.Unwrap()), nil
	})
}

// FlatMap chains futures: the second starts only after the first resolves.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return NewFuture(func() (U, error) {
		result := f.Await()
		if result.IsFailure() {
			var zero U
			return zero, result.UnwrapFailure()
		}
		next := fn(result.Unwrap()).Await()
		if next.IsFailure() {
			var zero U
			return zero, next.UnwrapFailure()
		}
		return next.Unwrap(), nil
	})
}

// All waits for every future and returns their outcomes in input order.
func All[T any](futures ...*Future[T]) []lambda.Either[T] {
	results := make([]lambda.Either[T], len(futures))
	var wg sync.WaitGroup
	wg.Add(len(futures))
	for i, f := range futures {
		go func(idx int, fut *Future[T]) {
			defer wg.Done()
			results[idx] = fut.Await()
		}(i, f)
	}
	wg.Wait()
	return results
}

// Race returns the outcome of the first future to settle. Racing zero
// futures fails with lambda.ErrNothingToRace.
func Race[T any](futures ...*Future[T]) lambda.Either[T] {
	if len(futures) == 0 {
		return lambda.Failure[T](lambda.ErrNothingToRace)
	}
	first := make(chan lambda.Either[T], 1)
	for _, f := range futures {
		go func(fut *Future[T]) {
			select {
			case first <- fut.Await():
			default:
			}
		}(f)
	}
	return <-first
}

// Resolve creates an already-settled successful future.
func Resolve[T any](value T) *Future[T] {
	f := &Future[T]{
		done:   make(chan struct{}),
		result: lambda.Success(value),
	}
	close(f.done)
	return f
}

// Reject creates an already-settled failed future.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{
		done:   make(chan struct{}),
		result: lambda.Failure[T](err),
	}
	close(f.done)
	return f
}

// FromTask forks the task exactly once into a Future. This is the point
// where a lazy Task commits to evaluation; the Future memoizes the outcome.
func FromTask[T any](t lambda.Task[T]) *Future[T] {
	return NewFuture(t.Await)
}

// ToTask adapts a Future into the two-callback protocol. Every Fork of the
// resulting Task observes the future's single settled outcome; a rejected
// future becomes a rejection, never an error return.
func ToTask[T any](f *Future[T]) lambda.Task[T] {
	return lambda.NewTask(func(reject func(error), resolve func(T)) {
		result := f.Await()
		if result.IsFailure() {
			reject(result.UnwrapFailure())
			return
		}
		resolve(result.Unwrap())
	})
}
