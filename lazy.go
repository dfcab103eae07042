package lambda

import (
	"sync"
	"sync/atomic"
)

// Lazy represents a lazily evaluated value with thread-safe memoization.
// Where IO re-runs on every trigger, a Lazy computes exactly once.
type Lazy[T any] struct {
	compute func() T
	value   T
	once    sync.Once
	done    uint32
}

// NewLazy creates a new lazy value.
func NewLazy[T any](compute func() T) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Get returns the value, computing it if necessary.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.compute()
		atomic.StoreUint32(&l.done, 1)
	})
	return l.value
}

// IsEvaluated returns true if the value has been computed.
func (l *Lazy[T]) IsEvaluated() bool {
	return atomic.LoadUint32(&l.done) == 1
}

// MapLazy applies a function to a lazy value without forcing it.
func MapLazy[T, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	return NewLazy(func() U {
		return fn(l.Get())
	})
}

// FlatMapLazy applies a function that returns a Lazy.
func FlatMapLazy[T, U any](l *Lazy[T], fn func(T) *Lazy[U]) *Lazy[U] {
	return NewLazy(func() U {
		return fn(l.Get()).Get()
	})
}

// LazyWithError is a lazy value whose computation can fail. A failed
// computation is retried on the next Get; a successful one is cached.
type LazyWithError[T any] struct {
	mu    sync.Mutex
	value T
	err   error
	fn    func() (T, error)
	done  bool
}

// NewLazyWithError creates a new LazyWithError with the given computation.
func NewLazyWithError[T any](fn func() (T, error)) *LazyWithError[T] {
	return &LazyWithError[T]{fn: fn}
}

// Get returns the value, computing it if necessary. If the computation
// fails, the error is returned and the next Get retries.
func (l *LazyWithError[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.value, l.err
	}

	l.value, l.err = l.fn()
	if l.err == nil {
		l.done = true
	}

	return l.value, l.err
}

// IsEvaluated returns true if the value has been successfully computed.
func (l *LazyWithError[T]) IsEvaluated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// MemoizeFunc creates a memoized version of a function.
func MemoizeFunc[T any](fn func() T) func() T {
	lazy := NewLazy(fn)
	return func() T {
		return lazy.Get()
	}
}

// MemoizeFuncWithError creates a memoized version of a fallible function.
func MemoizeFuncWithError[T any](fn func() (T, error)) func() (T, error) {
	lazy := NewLazyWithError(fn)
	return func() (T, error) {
		return lazy.Get()
	}
}
