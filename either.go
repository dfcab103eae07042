package lambda

// Either represents the outcome of an operation that may fail. It holds
// either a success value or a failure payload. Unlike Maybe there is no
// emptiness rule: a Success holding an empty slice is still Success.
type Either[T any] struct {
	value T
	err   error
	ok    bool
}

// Success creates a successful Either.
func Success[T any](value T) Either[T] {
	return Either[T]{value: value, ok: true}
}

// Failure creates a failed Either.
func Failure[T any](err error) Either[T] {
	return Either[T]{err: err, ok: false}
}

// EitherOf lifts a value into a Success. It never classifies.
func EitherOf[T any](value T) Either[T] {
	return Success(value)
}

// Try invokes fn immediately: Success of the returned value, or Failure of
// the returned error.
func Try[T any](fn func() (T, error)) Either[T] {
	value, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// TryFunc wraps an ordinary (value, error) call site.
func TryFunc[T any](value T, err error) Either[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// Catch invokes fn immediately and recovers a panic into a Failure. This is
// the single designated panic boundary for synchronous code; non-error panic
// values are wrapped in PanicError.
func Catch[T any](fn func() T) (e Either[T]) {
	defer func() {
		if r := recover(); r != nil {
			e = Failure[T](asError(r))
		}
	}()
	return Success(fn())
}

// IsSuccess returns true if the Either holds a success value.
func (e Either[T]) IsSuccess() bool {
	return e.ok
}

// IsFailure returns true if the Either holds a failure payload.
func (e Either[T]) IsFailure() bool {
	return !e.ok
}

// Unwrap returns the success value or panics on Failure.
func (e Either[T]) Unwrap() T {
	if !e.ok {
		panic("called Unwrap on Failure: " + e.err.Error())
	}
	return e.value
}

// UnwrapFailure returns the failure payload or panics on Success.
func (e Either[T]) UnwrapFailure() error {
	if e.ok {
		panic("called UnwrapFailure on Success")
	}
	return e.err
}

// UnwrapOr returns the success value or a default.
func (e Either[T]) UnwrapOr(defaultValue T) T {
	if e.ok {
		return e.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default from the
// failure payload.
func (e Either[T]) UnwrapOrElse(fn func(error) T) T {
	if e.ok {
		return e.value
	}
	return fn(e.err)
}

// Map applies a function to the success value. A Failure passes through
// untouched and the function is never invoked.
func (e Either[T]) Map(fn func(T) T) Functor[T] {
	return MapEither(e, fn)
}

// MapEither applies a transformation function to the success value.
func MapEither[T, U any](e Either[T], fn func(T) U) Either[U] {
	if e.ok {
		return Success(fn(e.value))
	}
	return Failure[U](e.err)
}

// MapFailure applies a function to the failure payload.
func MapFailure[T any](e Either[T], fn func(error) error) Either[T] {
	if e.ok {
		return e
	}
	return Failure[T](fn(e.err))
}

// FlatMapEither applies a function that returns an Either. On Failure the
// function is never invoked.
func FlatMapEither[T, U any](e Either[T], fn func(T) Either[U]) Either[U] {
	if e.ok {
		return fn(e.value)
	}
	return Failure[U](e.err)
}

// ApEither applies a function held by one Either to the value held by
// another. A Failure on the function side short-circuits.
func ApEither[T, U any](ef Either[func(T) U], ev Either[T]) Either[U] {
	if !ef.ok {
		return Failure[U](ef.err)
	}
	return MapEither(ev, ef.value)
}

// MatchEither is the total eliminator: onFailure for a Failure, onSuccess
// for a Success.
func MatchEither[T, U any](e Either[T], onFailure func(error) U, onSuccess func(T) U) U {
	if e.ok {
		return onSuccess(e.value)
	}
	return onFailure(e.err)
}

// FoldEither is the curried form of MatchEither.
func FoldEither[T, U any](onFailure func(error) U) func(func(T) U) func(Either[T]) U {
	return func(onSuccess func(T) U) func(Either[T]) U {
		return func(e Either[T]) U {
			return MatchEither(e, onFailure, onSuccess)
		}
	}
}

// MergeEithers accumulates all success payloads into an ordered slice when
// every input is Success. Otherwise the result is Failure holding an
// ErrorList of every failure payload in encounter order; a Success seen
// after the first Failure is ignored.
func MergeEithers[T any](es ...Either[T]) Either[[]T] {
	vs := make([]Validated[error, T], len(es))
	for i, e := range es {
		vs[i] = eitherToValidated(e)
	}
	return validatedToEither(SequenceValidated(vs))
}

// ValidateEithers applies every predicate to one fixed input. The result is
// Success of the input only if all predicates succeed; otherwise Failure
// holding an ErrorList of all failing payloads in invocation order.
func ValidateEithers[T any](input T, predicates ...func(T) Either[T]) Either[T] {
	v := TraverseValidated(predicates, func(p func(T) Either[T]) Validated[error, T] {
		return eitherToValidated(p(input))
	})
	return MapEither(validatedToEither(v), func([]T) T { return input })
}

func eitherToValidated[T any](e Either[T]) Validated[error, T] {
	if e.ok {
		return Valid[error](e.value)
	}
	return Invalid[error, T](e.err)
}

func validatedToEither[T any](v Validated[error, []T]) Either[[]T] {
	if v.IsValid() {
		return Success(v.Value())
	}
	return Failure[[]T](ErrorList(v.Errors()))
}
