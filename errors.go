package lambda

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAbsent is the failure carried by MaybeToEither when converting an
// Absent value.
var ErrAbsent = errors.New("maybe is absent")

// ErrNothingToRace is the rejection produced by racing zero tasks or
// futures, which could otherwise never settle.
var ErrNothingToRace = errors.New("nothing to race")

// ErrorList is an ordered collection of failure payloads, as accumulated by
// MergeEithers and ValidateEithers. It implements error and unwraps to its
// elements so errors.Is and errors.As traverse every payload.
type ErrorList []error

// Error joins the individual messages in order.
func (el ErrorList) Error() string {
	msgs := make([]string, len(el))
	for i, err := range el {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual payloads to errors.Is and errors.As.
func (el ErrorList) Unwrap() []error {
	return el
}

// PanicError wraps a non-error panic value recovered at one of the two
// designated boundaries, Catch and Task.Fork.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// asError normalizes a recovered panic value into the error channel.
func asError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return &PanicError{Value: recovered}
}
