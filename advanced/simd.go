package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

const lanes = 8

// vectorFeatures lists the SIMD extensions the CPU reports.
func vectorFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"SSE4.1", cpu.X86.HasSSE41},
			{"AVX", cpu.X86.HasAVX},
			{"AVX2", cpu.X86.HasAVX2},
			{"AVX-512F", cpu.X86.HasAVX512F},
		} {
			if f.ok {
				out = append(out, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "ASIMD")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "SVE")
		}
	}
	return out
}

// addVectors stores a[i]+b[i] in out, eight lanes per step. The fixed-size
// array conversions drop bounds checks inside the block, which lets the
// compiler keep the lanes in registers. Lengths must match.
func addVectors(a, b, out []float32) {
	if len(a) != len(b) || len(a) != len(out) {
		panic(fmt.Sprintf("addVectors: length mismatch %d, %d, %d", len(a), len(b), len(out)))
	}
	i := 0
	for ; i+lanes <= len(a); i += lanes {
		va := (*[lanes]float32)(a[i:])
		vb := (*[lanes]float32)(b[i:])
		vo := (*[lanes]float32)(out[i:])
		vo[0] = va[0] + vb[0]
		vo[1] = va[1] + vb[1]
		vo[2] = va[2] + vb[2]
		vo[3] = va[3] + vb[3]
		vo[4] = va[4] + vb[4]
		vo[5] = va[5] + vb[5]
		vo[6] = va[6] + vb[6]
		vo[7] = va[7] + vb[7]
	}
	for ; i < len(a); i++ {
		out[i] = a[i] + b[i]
	}
}

func addScalar(a, b, out []float32) {
	for i := range a {
		out[i] = a[i] + b[i]
	}
}

func demoSIMD() {
	fmt.Printf("  %s/%s vector features: %v\n", runtime.GOOS, runtime.GOARCH, vectorFeatures())

	const size = 16
	a := make([]float32, size)
	b := make([]float32, size)
	for i := range size {
		a[i] = float32(i)
		b[i] = float32(i * 2)
	}
	result := make([]float32, size)
	addVectors(a, b, result)
	fmt.Println("  SIMD-style result:", result)
}
