// Package lambda provides immutable monadic containers for Go: Maybe for
// optionality, Either for recoverable failure, IO for deferred synchronous
// effects and Task for deferred asynchronous effects, together with the
// conversions and lifting combinators that move values between them.
//
// All containers share the same operation set: a pointed constructor, Map,
// FlatMap and Ap, plus a type-specific eliminator. Transformations never
// mutate; every operation returns a new container. Absence and failure
// short-circuit: once a chain is Absent, Failure or rejected, later
// transforms are never invoked.
//
// The effect containers are lazy. Building an IO or Task, or composing one
// via Map/FlatMap/Ap, executes nothing; only Run (IO) or Fork (Task)
// evaluates the wrapped computation, and every trigger re-runs it.
//
//	count := 0
//	io := lambda.NewIO(func() (int, error) { count++; return count, nil })
//	doubled := lambda.MapIO(io, func(n int) int { return n * 2 })
//	// count == 0: nothing has run yet
//	v, _ := doubled.Run() // count == 1, v == 2
//
// The library performs no I/O and no logging of its own; it only wraps
// caller-supplied computations. The concurrency subpackage bridges Task to
// Future, the eager promise-style abstraction.
package lambda
