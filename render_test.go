package lambda

import (
	"errors"
	"testing"
)

func TestRenderContainers(t *testing.T) {
	t.Run("Maybe", func(t *testing.T) {
		if got := Present(42).String(); got != "Present(42)" {
			t.Errorf("expected Present(42), got %q", got)
		}
		if got := Absent[int]().String(); got != "Absent" {
			t.Errorf("expected Absent, got %q", got)
		}
	})

	t.Run("Either", func(t *testing.T) {
		if got := Success("ok").String(); got != "Success(ok)" {
			t.Errorf("expected Success(ok), got %q", got)
		}
		if got := Failure[int](errors.New("boom")).String(); got != "Failure(boom)" {
			t.Errorf("expected Failure(boom), got %q", got)
		}
	})

	t.Run("nested containers render recursively", func(t *testing.T) {
		m := Present(Success(1))
		if got := m.String(); got != "Present(Success(1))" {
			t.Errorf("expected Present(Success(1)), got %q", got)
		}
	})

	t.Run("Validated", func(t *testing.T) {
		if got := Valid[error](1).String(); got != "Valid(1)" {
			t.Errorf("expected Valid(1), got %q", got)
		}
		v := Invalid[error, int](errors.New("e1"), errors.New("e2"))
		if got := v.String(); got != "Invalid([e1, e2])" {
			t.Errorf("expected Invalid([e1, e2]), got %q", got)
		}
	})
}

func TestRenderCollections(t *testing.T) {
	t.Run("slices keep order", func(t *testing.T) {
		if got := Render([]int{1, 2, 3}); got != "[1, 2, 3]" {
			t.Errorf("expected [1, 2, 3], got %q", got)
		}
	})

	t.Run("map keys are sorted", func(t *testing.T) {
		m := map[string]int{"b": 2, "a": 1, "c": 3}
		want := "{a: 1, b: 2, c: 3}"
		for i := 0; i < 10; i++ {
			if got := Render(m); got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		}
	})

	t.Run("containers nest inside collections", func(t *testing.T) {
		got := Render([]Maybe[int]{Present(1), Absent[int]()})
		if got != "[Present(1), Absent]" {
			t.Errorf("expected [Present(1), Absent], got %q", got)
		}
	})
}

func TestRenderNeverTriggersEffects(t *testing.T) {
	runs := 0
	io := NewIO(func() (int, error) { runs++; return 1, nil })
	task := NewTask(func(_ func(error), resolve func(int)) { runs++; resolve(1) })

	if io.String() != "IO(<deferred>)" || task.String() != "Task(<deferred>)" {
		t.Error("unexpected rendering for deferred effects")
	}
	if runs != 0 {
		t.Errorf("expected rendering to run nothing, got %d runs", runs)
	}
}
