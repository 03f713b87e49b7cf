package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

func demoBuiltins() {
	fmt.Println("  min(3, 1, 2):", min(3, 1, 2), " max(3, 1, 2):", max(3, 1, 2))

	m := map[string]int{"a": 1, "b": 2}
	s := []int{1, 2, 3}
	clear(m)
	clear(s)
	fmt.Println("  after clear:", len(m), s)
}

// callers lists the function names on the stack above its caller.
func callers() []string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var names []string
	for {
		f, more := frames.Next()
		names = append(names, f.Function)
		if !more {
			break
		}
	}
	return names
}

// isTraceFrame matches the demo's own frames whatever the package path is:
// "main" under go run, the import path under go test.
func isTraceFrame(name string) bool {
	_, fn, ok := strings.Cut(name[strings.LastIndex(name, "/")+1:], ".")
	return ok && strings.HasPrefix(fn, "trace")
}

func traceInner() []string { return callers() }
func traceOuter() []string { return traceInner() }

func demoStackTrace() {
	for _, name := range traceOuter() {
		if isTraceFrame(name) {
			fmt.Println("  frame:", name)
		}
	}

	first, _, _ := strings.Cut(string(debug.Stack()), "\n")
	fmt.Println("  debug.Stack starts with:", first)
}

// squareAll squares values concurrently with WaitGroup.Go.
func squareAll(values []int) []int {
	out := make([]int, len(values))
	var wg sync.WaitGroup
	for i, v := range values {
		wg.Go(func() { out[i] = v * v })
	}
	wg.Wait()
	return out
}

func demoWaitGroupGo() {
	fmt.Println("  squares:", squareAll([]int{1, 2, 3, 4}))
}
