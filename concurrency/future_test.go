package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeetMartin/lambda"
)

func TestFutureResolveReject(t *testing.T) {
	t.Run("Resolve settles immediately", func(t *testing.T) {
		f := Resolve(42)
		assert.True(t, f.IsDone())
		result := f.Await()
		require.True(t, result.IsSuccess())
		assert.Equal(t, 42, result.Unwrap())
	})

	t.Run("Reject settles immediately", func(t *testing.T) {
		boom := errors.New("boom")
		f := Reject[int](boom)
		result := f.Await()
		require.True(t, result.IsFailure())
		assert.ErrorIs(t, result.UnwrapFailure(), boom)
	})
}

func TestFutureEagerness(t *testing.T) {
	started := make(chan struct{})
	f := NewFuture(func() (int, error) {
		close(started)
		return 1, nil
	})

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("expected the computation to start at construction")
	}
	assert.Equal(t, 1, f.Await().Unwrap())
}

func TestFutureMapFlatMap(t *testing.T) {
	t.Run("Map transforms the resolution", func(t *testing.T) {
		f := Map(Resolve(21), func(x int) int { return x * 2 })
		assert.Equal(t, 42, f.Await().Unwrap())
	})

	t.Run("Map propagates a failure untouched", func(t *testing.T) {
		boom := errors.New("boom")
		f := Map(Reject[int](boom), func(x int) int { return x })
		assert.ErrorIs(t, f.Await().UnwrapFailure(), boom)
	})

	t.Run("FlatMap starts the second future after the first resolves", func(t *testing.T) {
		f := FlatMap(Resolve(10), func(x int) *Future[int] {
			return Resolve(x + 1)
		})
		assert.Equal(t, 11, f.Await().Unwrap())
	})

	t.Run("FlatMap never builds the second future on failure", func(t *testing.T) {
		boom := errors.New("boom")
		var calls atomic.Int32
		f := FlatMap(Reject[int](boom), func(int) *Future[int] {
			calls.Add(1)
			return Resolve(1)
		})
		assert.ErrorIs(t, f.Await().UnwrapFailure(), boom)
		assert.Zero(t, calls.Load())
	})
}

func TestFutureAll(t *testing.T) {
	futures := []*Future[int]{Resolve(1), Resolve(2), Resolve(3)}
	results := All(futures...)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Unwrap())
	}
}

func TestFutureRace(t *testing.T) {
	t.Run("first to settle wins", func(t *testing.T) {
		slow := NewFuture(func() (string, error) {
			time.Sleep(50 * time.Millisecond)
			return "slow", nil
		})
		fast := Resolve("fast")

		result := Race(slow, fast)
		assert.Equal(t, "fast", result.Unwrap())
	})

	t.Run("empty race fails instead of hanging", func(t *testing.T) {
		result := Race[int]()
		require.True(t, result.IsFailure())
		assert.ErrorIs(t, result.UnwrapFailure(), lambda.ErrNothingToRace)
	})
}

func TestFutureAwaitContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stuck := NewFuture(func() (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})
	result := stuck.AwaitContext(ctx)
	require.True(t, result.IsFailure())
	assert.ErrorIs(t, result.UnwrapFailure(), context.Canceled)
}

func TestFuturePoll(t *testing.T) {
	release := make(chan struct{})
	f := NewFuture(func() (int, error) {
		<-release
		return 1, nil
	})

	assert.True(t, f.Poll().IsAbsent())
	close(release)
	f.Await()
	polled := f.Poll()
	require.True(t, polled.IsPresent())
	assert.Equal(t, 1, polled.Unwrap().Unwrap())
}

func TestFromTask(t *testing.T) {
	t.Run("forks exactly once and memoizes", func(t *testing.T) {
		var runs atomic.Int32
		task := lambda.NewTask(func(_ func(error), resolve func(int)) {
			resolve(int(runs.Add(1)))
		})

		f := FromTask(task)
		first := f.Await().Unwrap()
		second := f.Await().Unwrap()
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), runs.Load())
	})

	t.Run("a rejecting task becomes a failed future", func(t *testing.T) {
		boom := errors.New("boom")
		f := FromTask(lambda.RejectTask[int](boom))
		assert.ErrorIs(t, f.Await().UnwrapFailure(), boom)
	})
}

func TestToTask(t *testing.T) {
	t.Run("resolution passes through", func(t *testing.T) {
		v, err := ToTask(Resolve(7)).Await()
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("rejection passes through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ToTask(Reject[int](boom)).Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("every fork observes the single settled outcome", func(t *testing.T) {
		var runs atomic.Int32
		f := NewFuture(func() (int, error) {
			return int(runs.Add(1)), nil
		})
		task := ToTask(f)

		first, _ := task.Await()
		second, _ := task.Await()
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), runs.Load())
	})
}

func TestRoundTripTaskFuture(t *testing.T) {
	v, err := ToTask(FromTask(lambda.ResolveTask(5))).Await()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
