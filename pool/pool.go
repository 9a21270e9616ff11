// SPDX-License-Identifier: MIT

// Package pool runs independent tasks on a bounded number of workers and
// joins them, returning results in submission order.
//
// It is the executor behind both levels of parallelism in the search:
// colonies inside an orchestration, and ants inside one colony round.
// Tasks must not share mutable state.
package pool

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidWorkers is returned for a worker count below 1.
var ErrInvalidWorkers = errors.New("pool: workers must be >= 1")

// Task is one independent unit of work producing a T.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes tasks with at most workers goroutines and returns their results
// indexed like tasks. With workers == 1 tasks run sequentially on the calling
// goroutine. The first error cancels the context passed to the remaining tasks
// and is returned; results of tasks that did not finish are zero values.
func Run[T any](ctx context.Context, workers int, tasks []Task[T]) ([]T, error) {
	if workers < 1 {
		return nil, fmt.Errorf("Run(%d): %w", workers, ErrInvalidWorkers)
	}
	out := make([]T, len(tasks))

	if workers == 1 || len(tasks) <= 1 {
		for i, task := range tasks {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			v, err := task(ctx)
			if err != nil {
				return out, err
			}
			out[i] = v
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := task(gctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	return out, g.Wait()
}
