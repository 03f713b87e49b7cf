package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const (
	workers    = 10
	increments = 10_000
)

func hello(out chan<- string) {
	out <- "hello from a goroutine"
}

func withArgs(out chan<- string, i int, f float64, s string) {
	out <- fmt.Sprintf("arguments: %d, %g, %s", i, f, s)
}

func demoGoroutines() {
	out := make(chan string, 2)
	var wg sync.WaitGroup
	wg.Go(func() { hello(out) })
	wg.Go(func() { withArgs(out, 1, 3.14, "test") })
	wg.Wait()
	close(out)

	for msg := range out {
		fmt.Println(" ", msg)
	}
}

// mutexCounter runs n goroutines that each increment a shared int k times
// under a mutex and returns the final value.
func mutexCounter(n, k int) int {
	var (
		mu     sync.Mutex
		shared int
		wg     sync.WaitGroup
	)
	for range n {
		wg.Go(func() {
			for range k {
				mu.Lock()
				shared++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	return shared
}

func demoMutex() {
	fmt.Println("  shared data:", mutexCounter(workers, increments))
}

// handshake hands data to a worker through a condition variable and waits
// for the worker to publish its result. delay simulates preparation time.
func handshake(delay time.Duration) int {
	var (
		mu        sync.Mutex
		ready     bool
		processed int
	)
	cond := sync.NewCond(&mu)

	go func() {
		mu.Lock()
		for !ready {
			cond.Wait()
		}
		fmt.Println("  worker: processing data")
		processed = 100
		fmt.Println("  worker: signalling completion")
		mu.Unlock()
		cond.Broadcast()
	}()

	time.Sleep(delay)
	mu.Lock()
	ready = true
	fmt.Println("  main: data ready for processing")
	mu.Unlock()
	cond.Broadcast()

	mu.Lock()
	defer mu.Unlock()
	for processed == 0 {
		cond.Wait()
	}
	return processed
}

func demoCond() {
	fmt.Println("  back in main, data =", handshake(50*time.Millisecond))
}

// atomicCounter is mutexCounter without the lock.
func atomicCounter(n, k int) int64 {
	var (
		counter atomic.Int64
		wg      sync.WaitGroup
	)
	for range n {
		wg.Go(func() {
			for range k {
				counter.Add(1)
			}
		})
	}
	wg.Wait()
	return counter.Load()
}

func demoAtomic() {
	fmt.Println("  atomic counter:", atomicCounter(workers, increments))
}
