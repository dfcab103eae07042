package lambda

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of same-type functions to value, left to right.
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes same-type functions in right-to-left order, so
// Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Compose2 composes two functions of arbitrary types, left to right:
// Compose2(f, g)(x) == g(f(x)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry2 converts a binary function into a chain of unary functions.
func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into a chain of unary functions.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry2 converts a chain of unary functions back into a binary function.
func Uncurry2[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Uncurry3 converts a chain of unary functions back into a ternary function.
func Uncurry3[A, B, C, D any](fn func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return fn(a)(b)(c)
	}
}
