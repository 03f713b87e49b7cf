package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

// timeIt starts a timer and returns the func that reports it:
//
//	defer timeIt(os.Stdout, "work")()
func timeIt(out io.Writer, name string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		fmt.Fprintf(out, "  %s: execution time %d µs\n", name, d.Microseconds())
		return d
	}
}

var sinkFloat float64

// functionToProfile is the CPU-bound workload.
func functionToProfile(n int) float64 {
	result := 0.0
	for i := range n {
		result += float64(i) * 3.14159
	}
	sinkFloat = result
	return result
}

// profileCPU writes a CPU profile of fn to path.
func profileCPU(path string, fn func()) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	fn()
	pprof.StopCPUProfile()
	return nil
}

func demoProfiling(dir string) {
	func() {
		defer timeIt(os.Stdout, "functionToProfile")()
		functionToProfile(1_000_000)
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Println("  error:", err)
		return
	}
	path := filepath.Join(dir, "cpu.prof")
	err := profileCPU(path, func() {
		for range 50 {
			functionToProfile(1_000_000)
		}
	})
	if err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Println("  profile written →", path)
	fmt.Println("    go tool pprof", path)
}
