package lambda

import "reflect"

// Maybe represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers and empty-value
// sentinels.
type Maybe[T any] struct {
	value   T
	present bool
}

// Present creates a Maybe containing a value, bypassing classification.
func Present[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, present: true}
}

// Absent creates an empty Maybe.
func Absent[T any]() Maybe[T] {
	return Maybe[T]{present: false}
}

// MaybeOf classifies value: nil, nil pointers and nil collections, empty
// strings, empty slices and arrays, and empty maps become Absent; everything
// else becomes Present.
func MaybeOf[T any](value T) Maybe[T] {
	if isNothing(value) {
		return Absent[T]()
	}
	return Present(value)
}

func isNothing(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	case reflect.String, reflect.Array:
		return rv.Len() == 0
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	default:
		return false
	}
}

// IsPresent returns true if the Maybe contains a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// IsAbsent returns true if the Maybe is empty.
func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Unwrap returns the contained value or panics if absent.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic("called Unwrap on Absent")
	}
	return m.value
}

// UnwrapOr returns the contained value or a default.
func (m Maybe[T]) UnwrapOr(defaultValue T) T {
	if m.present {
		return m.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.present {
		return m.value
	}
	return fn()
}

// Map applies a function to the contained value if present. The result is
// re-classified through MaybeOf, so mapping to an empty value degrades to
// Absent. On Absent the function is never invoked.
func (m Maybe[T]) Map(fn func(T) T) Functor[T] {
	return MapMaybe(m, fn)
}

// MapMaybe applies a transformation function to a Maybe, re-classifying the
// result.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.present {
		return MaybeOf(fn(m.value))
	}
	return Absent[U]()
}

// FlatMapMaybe applies a function that returns a Maybe. On Absent the
// function is never invoked.
func FlatMapMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.present {
		return fn(m.value)
	}
	return Absent[U]()
}

// ApMaybe applies a function held by one Maybe to the value held by another.
// Either side being Absent short-circuits to Absent.
func ApMaybe[T, U any](mf Maybe[func(T) U], mv Maybe[T]) Maybe[U] {
	if !mf.present {
		return Absent[U]()
	}
	return MapMaybe(mv, mf.value)
}

// MatchMaybe is the total eliminator: it invokes onAbsent with no arguments
// if the Maybe is empty, otherwise onPresent with the value.
func MatchMaybe[T, U any](m Maybe[T], onAbsent func() U, onPresent func(T) U) U {
	if m.present {
		return onPresent(m.value)
	}
	return onAbsent()
}

// FoldMaybe is the curried form of MatchMaybe.
func FoldMaybe[T, U any](onAbsent func() U) func(func(T) U) func(Maybe[T]) U {
	return func(onPresent func(T) U) func(Maybe[T]) U {
		return func(m Maybe[T]) U {
			return MatchMaybe(m, onAbsent, onPresent)
		}
	}
}

// Filter returns Absent if the predicate returns false.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return Absent[T]()
}

// ToSlice converts the Maybe to a slice of zero or one element.
func (m Maybe[T]) ToSlice() []T {
	if m.present {
		return []T{m.value}
	}
	return []T{}
}

// FromPtr creates a Maybe from a pointer.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Absent[T]()
	}
	return Present(*ptr)
}

// ToPtr converts the Maybe to a pointer.
func (m Maybe[T]) ToPtr() *T {
	if m.present {
		return &m.value
	}
	return nil
}

// MergeMaybes reduces the given containers left to right, accumulating
// present values into an ordered slice. Any Absent input poisons the whole
// result: the reduction keeps going but the accumulator stays Absent.
func MergeMaybes[T any](ms ...Maybe[T]) Maybe[[]T] {
	acc := Present(make([]T, 0, len(ms)))
	for _, m := range ms {
		if !acc.present || !m.present {
			acc = Absent[[]T]()
			continue
		}
		acc = Present(append(acc.value, m.value))
	}
	return acc
}
