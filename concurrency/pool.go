package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/marcodamonte/language-tour/internal/workerpool"
)

// poolCounter submits tasks to a fixed pool; each task bumps a shared
// counter k times.
func poolCounter(ctx context.Context, logger *log.Logger, size, tasks, k int) (int64, workerpool.Metrics, error) {
	pool := workerpool.New(workerpool.Config{
		Name:            "counter-pool",
		Workers:         size,
		QueueSize:       tasks,
		ShutdownTimeout: 3 * time.Second,
		Logger:          logger,
	})

	var (
		counter   atomic.Int64
		submitErr error
	)
	for range tasks {
		if err := ctx.Err(); err != nil {
			submitErr = fmt.Errorf("submit: %w", err)
			break
		}
		err := pool.Submit(ctx, func(ctx context.Context) error {
			for range k {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				counter.Add(1)
			}
			return nil
		})
		if err != nil {
			submitErr = err
			break
		}
	}

	err := errors.Join(submitErr, pool.Shutdown())
	return counter.Load(), pool.Metrics(), err
}

func demoPool(ctx context.Context, logger *log.Logger) {
	total, m, err := poolCounter(ctx, logger, 4, workers, increments)
	switch {
	case errors.Is(err, workerpool.ErrShutdownTimeout):
		logger.Println("[main] some tasks were cancelled (shutdown timeout exceeded)")
	case err != nil:
		logger.Printf("[main] stopped early: %v", err)
	}
	logger.Printf("[main] counter=%d", total)
	logger.Printf("[main] metrics: submitted=%d started=%d succeeded=%d failed=%d dropped=%d",
		m.Submitted, m.Started, m.Succeeded, m.Failed, m.Dropped)
}
