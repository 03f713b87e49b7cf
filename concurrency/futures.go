package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Promise is the write side of a single value; Future is the read side.
type Promise[T any] struct {
	once sync.Once
	ch   chan result[T]
}

type result[T any] struct {
	val T
	err error
}

// Future waits for the value set on its Promise.
type Future[T any] struct {
	ch <-chan result[T]
}

// NewPromise returns a connected promise/future pair.
func NewPromise[T any]() (*Promise[T], Future[T]) {
	ch := make(chan result[T], 1)
	return &Promise[T]{ch: ch}, Future[T]{ch: ch}
}

// Set delivers v. Only the first Set or Fail has an effect.
func (p *Promise[T]) Set(v T) { p.complete(result[T]{val: v}) }

// Fail delivers err instead of a value.
func (p *Promise[T]) Fail(err error) { p.complete(result[T]{err: err}) }

func (p *Promise[T]) complete(r result[T]) {
	p.once.Do(func() {
		p.ch <- r
		close(p.ch)
	})
}

// Get blocks until the value arrives or ctx ends. A Future can be read
// only once.
func (f Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case r, ok := <-f.ch:
		if !ok {
			var zero T
			return zero, errFutureConsumed
		}
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

var errFutureConsumed = errors.New("future already consumed")

// produceValue fulfils p after delay.
func produceValue(p *Promise[int], delay time.Duration) {
	time.Sleep(delay)
	p.Set(42)
}

func demoPromise(ctx context.Context) {
	p, f := NewPromise[int]()
	go produceValue(p, 100*time.Millisecond)

	fmt.Println("  waiting for the promised value...")
	v, err := f.Get(ctx)
	if err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Println("  promised value:", v)
}

// asyncTask pretends to do slow work and returns a result.
func asyncTask(ctx context.Context, d time.Duration, v int) (int, error) {
	select {
	case <-time.After(d):
		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// runAsync launches one task per value and returns results in input order.
// The first failure cancels the others.
func runAsync(ctx context.Context, values []int, fail int) ([]int, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]int, len(values))
	for i, v := range values {
		g.Go(func() error {
			if v == fail {
				return fmt.Errorf("task %d: %w", v, errTaskFailed)
			}
			r, err := asyncTask(ctx, time.Duration(10*(i+1))*time.Millisecond, v)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

var errTaskFailed = errors.New("task failed")

func demoAsync(ctx context.Context) {
	fmt.Println("  doing other work while async tasks run...")
	results, err := runAsync(ctx, []int{99, 7, 13}, -1)
	fmt.Println("  results:", results, "err:", err)

	_, err = runAsync(ctx, []int{99, 7, 13}, 7)
	fmt.Println("  with a failing task:", err)
}

// schedule runs fn after d unless the returned stop func is called first.
// stop reports whether it prevented the call.
func schedule(d time.Duration, fn func()) (stop func() bool) {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

func demoDeferred() {
	done := make(chan string, 1)
	schedule(30*time.Millisecond, func() { done <- "deferred task ran" })

	cancelled := schedule(30*time.Millisecond, func() { done <- "should not run" })
	fmt.Println("  second task cancelled:", cancelled())

	fmt.Println(" ", <-done)
}

// boundedMax runs jobs with at most limit in flight and reports the peak
// concurrency it observed.
func boundedMax(ctx context.Context, jobs, limit int) (int, error) {
	sem := semaphore.NewWeighted(int64(limit))
	var (
		mu           sync.Mutex
		active, peak int
		wg           sync.WaitGroup
	)
	for range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return peak, err
		}
		wg.Go(func() {
			defer sem.Release(1)
			mu.Lock()
			active++
			peak = max(peak, active)
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		})
	}
	wg.Wait()
	return peak, nil
}

func demoSemaphore(ctx context.Context) {
	peak, err := boundedMax(ctx, 12, 3)
	fmt.Printf("  12 jobs, limit 3 → peak concurrency %d (err=%v)\n", peak, err)
}
