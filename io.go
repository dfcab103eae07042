package lambda

// IO wraps a deferred synchronous computation that may fail. Nothing runs at
// construction or composition time; only Run evaluates the computation, and
// every Run re-evaluates it. IO never recovers panics and never inspects the
// error beyond passing it through; converting failures into data is the job
// of Try and EitherToIO.
type IO[T any] struct {
	run func() (T, error)
}

// NewIO creates an IO from a computation, without invoking it.
func NewIO[T any](fn func() (T, error)) IO[T] {
	return IO[T]{run: fn}
}

// IOOf lifts a pure value into an IO that always succeeds with it.
func IOOf[T any](value T) IO[T] {
	return IO[T]{run: func() (T, error) {
		return value, nil
	}}
}

// Run evaluates the wrapped computation. There is no memoization: each call
// re-runs the whole composed chain.
func (io IO[T]) Run() (T, error) {
	return io.run()
}

// Map returns a new IO that runs the original and applies fn to a successful
// result. On error fn is never reached.
func (io IO[T]) Map(fn func(T) T) Functor[T] {
	return MapIO(io, fn)
}

// MapIO returns a new IO whose computation runs the original and then
// transforms the result.
func MapIO[T, U any](io IO[T], fn func(T) U) IO[U] {
	return IO[U]{run: func() (U, error) {
		value, err := io.run()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(value), nil
	}}
}

// FlatMapIO returns a new IO that, when run, runs the original, builds a
// second IO from its result and runs that too. Nested IOs flatten without
// the caller unwrapping.
func FlatMapIO[T, U any](io IO[T], fn func(T) IO[U]) IO[U] {
	return IO[U]{run: func() (U, error) {
		value, err := io.run()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(value).run()
	}}
}

// ApIO applies the function produced by one IO to the value produced by
// another, via FlatMapIO.
func ApIO[T, U any](iof IO[func(T) U], iov IO[T]) IO[U] {
	return FlatMapIO(iof, func(fn func(T) U) IO[U] {
		return MapIO(iov, fn)
	})
}

// Memoize returns an IO that caches the first successful evaluation and
// replays it on every later Run; failed evaluations are retried. The default
// IO semantics stay re-running; memoization is strictly opt-in.
func (io IO[T]) Memoize() IO[T] {
	lazy := NewLazyWithError(io.run)
	return IO[T]{run: lazy.Get}
}
