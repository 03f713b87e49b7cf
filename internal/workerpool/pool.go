// Package workerpool runs tasks on a fixed number of goroutines.
//
// It is the Go counterpart of a classic "thread pool": callers hand tasks to
// Submit, N workers drain a shared queue, and Shutdown stops intake, drains
// what is queued and force-cancels stragglers after a timeout.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Task is the unit of work. It receives the pool context, which is cancelled
// when a shutdown times out.
type Task func(ctx context.Context) error

// Config holds pool construction parameters.
type Config struct {
	// Name prefixes every log line, e.g. "[counter-pool]".
	Name string

	// Workers is the number of goroutines consuming tasks. Defaults to 1.
	Workers int

	// QueueSize is the capacity of the task channel. 0 means Submit blocks
	// until a worker is ready.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for a clean drain.
	// Defaults to 30 s.
	ShutdownTimeout time.Duration

	// Logger receives lifecycle messages. Defaults to log.Default().
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "pool"
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// Metrics is a snapshot of the pool counters.
type Metrics struct {
	Submitted int64
	Started   int64
	Succeeded int64
	Failed    int64
	Dropped   int64
}

type counters struct {
	submitted atomic.Int64
	started   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// Pool is a fixed-size worker pool.
//
//	p := workerpool.New(cfg)
//	p.Submit(ctx, task)
//	p.Shutdown()
type Pool struct {
	cfg   Config
	tasks chan Task
	wg    sync.WaitGroup
	stats counters

	ctx    context.Context
	cancel context.CancelFunc

	// mu guards closed and the close of tasks against in-flight sends.
	mu           sync.RWMutex
	closed       bool
	shutdownOnce sync.Once
	shutdownErr  error
}

// Sentinel errors returned by the pool.
var (
	ErrPoolClosed      = errors.New("worker pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; tasks were cancelled")
)

// New starts cfg.Workers goroutines and returns the pool.
func New(cfg Config) *Pool {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		cfg:    cfg,
		tasks:  make(chan Task, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	p.logf("starting %d workers (queue=%d, shutdownTimeout=%s)",
		cfg.Workers, cfg.QueueSize, cfg.ShutdownTimeout)

	for id := range cfg.Workers {
		p.wg.Add(1)
		go p.work(id)
	}
	return p
}

// Submit enqueues a task, blocking while the queue is full. It returns
// ErrPoolClosed once Shutdown has begun, or the caller's context error if ctx
// ends before a slot frees up.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.stats.dropped.Add(1)
		return ErrPoolClosed
	}
	p.stats.submitted.Add(1)

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		p.stats.dropped.Add(1)
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	}
}

// Shutdown stops intake, waits up to ShutdownTimeout for queued and running
// tasks, then cancels the pool context and waits for workers to return.
// It is idempotent; every call returns the result of the first one.
func (p *Pool) Shutdown() error {
	p.shutdownOnce.Do(func() {
		p.logf("shutdown initiated")
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		timer := time.NewTimer(p.cfg.ShutdownTimeout)
		defer timer.Stop()

		select {
		case <-done:
			p.cancel()
			p.logf("shutdown complete")
		case <-timer.C:
			p.logf("shutdown timeout (%s) elapsed, cancelling workers", p.cfg.ShutdownTimeout)
			p.cancel()
			<-done
			p.logf("shutdown complete (forced)")
			p.shutdownErr = ErrShutdownTimeout
		}
	})
	return p.shutdownErr
}

// Metrics returns a snapshot of the counters. Fields are individually
// consistent but not read under a common lock.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: p.stats.submitted.Load(),
		Started:   p.stats.started.Load(),
		Succeeded: p.stats.succeeded.Load(),
		Failed:    p.stats.failed.Load(),
		Dropped:   p.stats.dropped.Load(),
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		if p.ctx.Err() != nil {
			// Forced shutdown: drain the queue without running anything.
			p.stats.failed.Add(1)
			continue
		}
		p.stats.started.Add(1)
		if err := p.run(task); err != nil {
			p.stats.failed.Add(1)
			p.logf("worker %d: task failed: %v", id, err)
			continue
		}
		p.stats.succeeded.Add(1)
	}
}

// run executes one task and turns a panic into an error so a single bad
// task cannot take the worker down with it.
func (p *Pool) run(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(p.ctx)
}

func (p *Pool) logf(format string, args ...any) {
	p.cfg.Logger.Printf("["+p.cfg.Name+"] "+format, args...)
}
