// Package syncjob simulates a batched sync of the task collection. No real
// I/O happens; each item costs one delay. Batches run strictly in input
// order with no parallelism, matching the single-writer model of the store.
package syncjob

import (
	"context"
	"time"

	"github.com/jyang234/taskpad/internal/model"
)

// Simulate walks the tasks in order, sleeping delay per item to stand in for
// sync I/O, and returns how many items were counted as synced. A cancelled
// context aborts between items with the count so far.
func Simulate(ctx context.Context, tasks []model.Task, delay time.Duration) (int, error) {
	synced := 0
	for range tasks {
		if err := wait(ctx, delay); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

// InBatches partitions tasks into consecutive batches of at most batchSize
// and syncs them sequentially. A non-positive batch size fails before any
// work happens.
func InBatches(ctx context.Context, tasks []model.Task, batchSize int, delay time.Duration) (int, error) {
	if batchSize <= 0 {
		return 0, &model.ValidationError{Field: "batch_size", Reason: "must be > 0"}
	}

	total := 0
	for start := 0; start < len(tasks); start += batchSize {
		end := start + batchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		n, err := Simulate(ctx, tasks[start:end], delay)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
