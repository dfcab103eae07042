package lambda

// Validated is an applicative validation result that accumulates errors
// instead of short-circuiting on the first one. It backs MergeEithers and
// ValidateEithers and can be used directly when every failure matters.
type Validated[E, A any] struct {
	value  A
	errors []E
	valid  bool
}

// Valid creates a valid result.
func Valid[E, A any](value A) Validated[E, A] {
	return Validated[E, A]{value: value, valid: true}
}

// Invalid creates an invalid result with errors.
func Invalid[E, A any](errors ...E) Validated[E, A] {
	return Validated[E, A]{errors: errors, valid: false}
}

// IsValid returns true if the validation passed.
func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validated[E, A]) IsInvalid() bool {
	return !v.valid
}

// Value returns the value, panicking if invalid.
func (v Validated[E, A]) Value() A {
	if !v.valid {
		panic("called Value on invalid Validated")
	}
	return v.value
}

// Errors returns the accumulated errors, empty if valid.
func (v Validated[E, A]) Errors() []E {
	return v.errors
}

// ValueOr returns the value or a default if invalid.
func (v Validated[E, A]) ValueOr(defaultValue A) A {
	if v.valid {
		return v.value
	}
	return defaultValue
}

// MapValidated applies a function to the value if valid.
func MapValidated[E, A, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.valid {
		return Validated[E, B]{errors: v.errors, valid: false}
	}
	return Valid[E](fn(v.value))
}

// CombineValidated combines two validated values, accumulating errors from
// both sides.
func CombineValidated[E, A, B, C any](va Validated[E, A], vb Validated[E, B], fn func(A, B) C) Validated[E, C] {
	if va.valid && vb.valid {
		return Valid[E](fn(va.value, vb.value))
	}
	errs := make([]E, 0, len(va.errors)+len(vb.errors))
	errs = append(errs, va.errors...)
	errs = append(errs, vb.errors...)
	return Invalid[E, C](errs...)
}

// CombineValidated3 combines three validated values, accumulating errors.
func CombineValidated3[E, A, B, C, D any](va Validated[E, A], vb Validated[E, B], vc Validated[E, C], fn func(A, B, C) D) Validated[E, D] {
	if va.valid && vb.valid && vc.valid {
		return Valid[E](fn(va.value, vb.value, vc.value))
	}
	errs := make([]E, 0, len(va.errors)+len(vb.errors)+len(vc.errors))
	errs = append(errs, va.errors...)
	errs = append(errs, vb.errors...)
	errs = append(errs, vc.errors...)
	return Invalid[E, D](errs...)
}

// SequenceValidated converts a slice of Validated into a Validated of slice,
// accumulating every error in input order.
func SequenceValidated[E, A any](vs []Validated[E, A]) Validated[E, []A] {
	values := make([]A, 0, len(vs))
	errs := make([]E, 0)
	allValid := true

	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			allValid = false
			errs = append(errs, v.errors...)
		}
	}

	if allValid {
		return Valid[E](values)
	}
	return Invalid[E, []A](errs...)
}

// TraverseValidated applies fn to each element and sequences the results.
func TraverseValidated[E, A, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	results := make([]Validated[E, B], len(items))
	for i, item := range items {
		results[i] = fn(item)
	}
	return SequenceValidated(results)
}

// FoldValidated applies one of two functions based on validity.
func FoldValidated[E, A, B any](v Validated[E, A], onInvalid func([]E) B, onValid func(A) B) B {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.errors)
}
