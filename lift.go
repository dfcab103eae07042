package lambda

// Lifting combinators: apply an ordinary two- or three-argument function
// across containers via the container's Ap. Go has no higher-kinded types,
// so the lifts are monomorphized per container; each variant shares the same
// shape, Curry the function and thread it through Map and Ap.

// Lift2Maybe applies fn across two Maybes; any Absent input short-circuits.
func Lift2Maybe[A, B, C any](fn func(A, B) C, ma Maybe[A], mb Maybe[B]) Maybe[C] {
	return ApMaybe(MapMaybe(ma, Curry2(fn)), mb)
}

// Lift3Maybe applies fn across three Maybes.
func Lift3Maybe[A, B, C, D any](fn func(A, B, C) D, ma Maybe[A], mb Maybe[B], mc Maybe[C]) Maybe[D] {
	return ApMaybe(ApMaybe(MapMaybe(ma, Curry3(fn)), mb), mc)
}

// Lift2Either applies fn across two Eithers; the first Failure encountered
// short-circuits.
func Lift2Either[A, B, C any](fn func(A, B) C, ea Either[A], eb Either[B]) Either[C] {
	return ApEither(MapEither(ea, Curry2(fn)), eb)
}

// Lift3Either applies fn across three Eithers.
func Lift3Either[A, B, C, D any](fn func(A, B, C) D, ea Either[A], eb Either[B], ec Either[C]) Either[D] {
	return ApEither(ApEither(MapEither(ea, Curry3(fn)), eb), ec)
}

// Lift2IO combines two deferred computations; nothing runs until the result
// is run, and the first error short-circuits.
func Lift2IO[A, B, C any](fn func(A, B) C, ioa IO[A], iob IO[B]) IO[C] {
	return ApIO(MapIO(ioa, Curry2(fn)), iob)
}

// Lift3IO combines three deferred computations.
func Lift3IO[A, B, C, D any](fn func(A, B, C) D, ioa IO[A], iob IO[B], ioc IO[C]) IO[D] {
	return ApIO(ApIO(MapIO(ioa, Curry3(fn)), iob), ioc)
}

// Lift2Task combines two Tasks sequentially via Ap; the first rejection
// short-circuits and the second Task is never forked after it.
func Lift2Task[A, B, C any](fn func(A, B) C, ta Task[A], tb Task[B]) Task[C] {
	return ApTask(MapTask(ta, Curry2(fn)), tb)
}

// Lift3Task combines three Tasks sequentially via Ap.
func Lift3Task[A, B, C, D any](fn func(A, B, C) D, ta Task[A], tb Task[B], tc Task[C]) Task[D] {
	return ApTask(ApTask(MapTask(ta, Curry3(fn)), tb), tc)
}
