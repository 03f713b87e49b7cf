package main

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"sync/atomic"
	"testing"
	"time"
)

func TestMutexCounter(t *testing.T) {
	t.Parallel()

	if got := mutexCounter(workers, increments); got != workers*increments {
		t.Errorf("mutexCounter = %d; want %d", got, workers*increments)
	}
}

func TestAtomicCounter(t *testing.T) {
	t.Parallel()

	if got := atomicCounter(workers, increments); got != workers*increments {
		t.Errorf("atomicCounter = %d; want %d", got, workers*increments)
	}
}

func TestHandshake(t *testing.T) {
	t.Parallel()

	if got := handshake(time.Millisecond); got != 100 {
		t.Errorf("handshake = %d; want 100", got)
	}
}

func TestPromise(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	go produceValue(p, 10*time.Millisecond)

	v, err := f.Get(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("Get = %d, %v; want 42, nil", v, err)
	}
	if _, err := f.Get(context.Background()); !errors.Is(err, errFutureConsumed) {
		t.Errorf("second Get = %v; want errFutureConsumed", err)
	}
}

func TestPromiseFirstWriteWins(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[string]()
	p.Fail(errTaskFailed)
	p.Set("ignored")

	if _, err := f.Get(context.Background()); !errors.Is(err, errTaskFailed) {
		t.Errorf("Get err = %v; want errTaskFailed", err)
	}
}

func TestFutureGetCancelled(t *testing.T) {
	t.Parallel()

	_, f := NewPromise[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := f.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get = %v; want DeadlineExceeded", err)
	}
}

func TestRunAsync(t *testing.T) {
	t.Parallel()

	got, err := runAsync(context.Background(), []int{99, 7, 13}, -1)
	if err != nil || !slices.Equal(got, []int{99, 7, 13}) {
		t.Errorf("runAsync = %v, %v", got, err)
	}

	if _, err := runAsync(context.Background(), []int{1, 2, 3}, 2); !errors.Is(err, errTaskFailed) {
		t.Errorf("runAsync with failure = %v; want errTaskFailed", err)
	}
}

func TestScheduleStop(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	stop := schedule(20*time.Millisecond, func() { ran.Store(true) })
	if !stop() {
		t.Fatal("stop() = false; want true before the deadline")
	}
	time.Sleep(40 * time.Millisecond)
	if ran.Load() {
		t.Error("stopped task ran")
	}
}

func TestScheduleRuns(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	schedule(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task did not run")
	}
}

func TestBoundedMax(t *testing.T) {
	t.Parallel()

	peak, err := boundedMax(context.Background(), 12, 3)
	if err != nil {
		t.Fatalf("boundedMax: %v", err)
	}
	if peak < 1 || peak > 3 {
		t.Errorf("peak = %d; want 1..3", peak)
	}
}

func TestBoundedMaxCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := boundedMax(ctx, 5, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("boundedMax(cancelled) = %v; want context.Canceled", err)
	}
}

func TestPoolCounter(t *testing.T) {
	t.Parallel()

	logger := log.New(io.Discard, "", 0)
	total, m, err := poolCounter(context.Background(), logger, 4, workers, increments)
	if err != nil {
		t.Fatalf("poolCounter: %v", err)
	}
	if total != workers*increments {
		t.Errorf("counter = %d; want %d", total, workers*increments)
	}
	if m.Succeeded != workers {
		t.Errorf("Succeeded = %d; want %d", m.Succeeded, workers)
	}
}

func TestPoolCounterReportsSubmitError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := log.New(io.Discard, "", 0)
	total, m, err := poolCounter(ctx, logger, 2, workers, increments)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("poolCounter(cancelled) err = %v; want context.Canceled", err)
	}
	if total != 0 || m.Submitted != 0 {
		t.Errorf("counter=%d submitted=%d; want 0, 0", total, m.Submitted)
	}
}

func BenchmarkMutexCounter(b *testing.B) {
	for b.Loop() {
		mutexCounter(4, 1000)
	}
}

func BenchmarkAtomicCounter(b *testing.B) {
	for b.Loop() {
		atomicCounter(4, 1000)
	}
}
