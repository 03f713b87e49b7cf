package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Each demo covers a topic that sits close to the runtime: allocation,
// compile-time evaluation, C interop, profiling, data layout and SIMD.
//
// Run:
//
//	go run .
//	CGO_ENABLED=0 go run .        — pure Go fallback for the C call
//	go test -bench=. -benchmem    — allocator, layout and vector benchmarks
func main() {
	section("Custom allocation — tracking allocator and slab")
	demoTracking(os.Stdout)
	demoSlab()

	section("Compile-time computation — constants, generics, reflection")
	demoCompileTime()

	section("Interfacing with C — cgo")
	demoCgo()

	section("Profiling — deferred timer and pprof")
	demoProfiling(filepath.Join(os.TempDir(), "language-tour"))

	section("Cache-friendly layout — AoS vs SoA")
	demoLayout()

	section("SIMD — 8-wide vector add")
	demoSIMD()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
