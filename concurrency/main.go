package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Each demo covers one concurrency primitive in its textbook setting.
// Ctrl-C cancels the context-aware demos.
//
// Run:
//
//	go run .
//	go run -race .
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	section("Goroutines — start, pass arguments, join")
	demoGoroutines()

	section("sync.Mutex — 10 goroutines × 10000 increments")
	demoMutex()

	section("sync.Cond — ready/processed handshake")
	demoCond()

	section("sync/atomic — lock-free counter")
	demoAtomic()

	section("Promise/future — a value delivered once over a channel")
	demoPromise(ctx)

	section("errgroup — async tasks with a shared error")
	demoAsync(ctx)

	section("time.AfterFunc — deferred and cancelled tasks")
	demoDeferred()

	section("semaphore — bounded parallelism")
	demoSemaphore(ctx)

	section("Worker pool — shared counter and graceful shutdown")
	demoPool(ctx, logger)
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
