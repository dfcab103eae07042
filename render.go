package lambda

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// renderConfig keeps the scalar/struct fallback deterministic: sorted map
// keys, no pointer addresses.
var renderConfig = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Render produces a deterministic textual form of a value for diagnostics.
// Nested containers render through their String methods, slices as
// "[a, b]", maps as "{k: v}" with sorted keys. The output is not a
// serialization format.
func Render(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "nil"
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = Render(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, Render(iter.Key().Interface())+": "+Render(iter.Value().Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.String:
		return rv.String()
	default:
		return strings.TrimRight(renderConfig.Sprintf("%v", v), "\n")
	}
}

// String renders "Present(value)" or "Absent".
func (m Maybe[T]) String() string {
	if m.present {
		return "Present(" + Render(m.value) + ")"
	}
	return "Absent"
}

// String renders "Success(value)" or "Failure(payload)".
func (e Either[T]) String() string {
	if e.ok {
		return "Success(" + Render(e.value) + ")"
	}
	return "Failure(" + Render(e.err) + ")"
}

// String renders "Valid(value)" or "Invalid([payloads])".
func (v Validated[E, A]) String() string {
	if v.valid {
		return "Valid(" + Render(v.value) + ")"
	}
	return "Invalid(" + Render(v.errors) + ")"
}

// String never runs the deferred computation.
func (io IO[T]) String() string {
	return "IO(<deferred>)"
}

// String never runs the deferred computation.
func (t Task[T]) String() string {
	return "Task(<deferred>)"
}
