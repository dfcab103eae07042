package lambda

// Cross-container conversions. All of them are pure: they build a new
// container from the source's variant and hold no reference back.

// MaybeToEither converts absence into the ErrAbsent failure.
func MaybeToEither[T any](m Maybe[T]) Either[T] {
	if m.IsPresent() {
		return Success(m.Unwrap())
	}
	return Failure[T](ErrAbsent)
}

// EitherToMaybe discards the failure payload. A Success value is
// re-classified through MaybeOf, so an empty payload degrades to Absent.
func EitherToMaybe[T any](e Either[T]) Maybe[T] {
	if e.IsSuccess() {
		return MaybeOf(e.Unwrap())
	}
	return Absent[T]()
}

// EitherToIO defers the branch: a Success becomes an IO returning the value,
// a Failure becomes an IO that returns the failure payload on every Run.
func EitherToIO[T any](e Either[T]) IO[T] {
	return NewIO(func() (T, error) {
		if e.IsFailure() {
			var zero T
			return zero, e.UnwrapFailure()
		}
		return e.Unwrap(), nil
	})
}

// EitherToTask defers the branch: a Success becomes an always-resolve Task,
// a Failure an always-reject one.
func EitherToTask[T any](e Either[T]) Task[T] {
	if e.IsFailure() {
		return RejectTask[T](e.UnwrapFailure())
	}
	return ResolveTask(e.Unwrap())
}

// MaybeToTask rejects with ErrAbsent for an Absent value.
func MaybeToTask[T any](m Maybe[T]) Task[T] {
	return EitherToTask(MaybeToEither(m))
}

// IOToTask adapts a deferred synchronous effect into the two-callback
// protocol. The IO still only runs on Fork.
func IOToTask[T any](io IO[T]) Task[T] {
	return TaskFromFunc(io.Run)
}
