package pool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/antpath/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squares(n int, active, peak *int32) []pool.Task[int] {
	tasks := make([]pool.Task[int], n)
	for i := range tasks {
		i := i
		tasks[i] = func(ctx context.Context) (int, error) {
			cur := atomic.AddInt32(active, 1)
			for {
				p := atomic.LoadInt32(peak)
				if cur <= p || atomic.CompareAndSwapInt32(peak, p, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(active, -1)
			return i * i, nil
		}
	}

	return tasks
}

func TestRun_OrderedResults(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		var active, peak int32
		got, err := pool.Run(context.Background(), workers, squares(10, &active, &peak))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, got)
		assert.LessOrEqual(t, int(peak), workers)
	}
}

func TestRun_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	tasks := []pool.Task[int]{
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (int, error) { return 0, boom },
		func(ctx context.Context) (int, error) { return 3, nil },
	}
	for _, workers := range []int{1, 2} {
		_, err := pool.Run(context.Background(), workers, tasks)
		assert.ErrorIs(t, err, boom)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var active, peak int32
	_, err := pool.Run(ctx, 1, squares(3, &active, &peak))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidWorkers(t *testing.T) {
	_, err := pool.Run[int](context.Background(), 0, nil)
	assert.ErrorIs(t, err, pool.ErrInvalidWorkers)

	got, err := pool.Run[int](context.Background(), 4, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
