package main

import "fmt"

// pointAoS stores one point per element: x, y, z interleaved.
type pointAoS struct {
	X, Y, Z float32
}

// pointsSoA stores each coordinate in its own contiguous slice.
type pointsSoA struct {
	X, Y, Z []float32
}

func makeAoS(n int) []pointAoS {
	pts := make([]pointAoS, n)
	for i := range pts {
		f := float32(i)
		pts[i] = pointAoS{f, f * 2, f * 3}
	}
	return pts
}

func makeSoA(n int) pointsSoA {
	s := pointsSoA{X: make([]float32, n), Y: make([]float32, n), Z: make([]float32, n)}
	for i := range n {
		f := float32(i)
		s.X[i], s.Y[i], s.Z[i] = f, f*2, f*3
	}
	return s
}

// sumXAoS touches every cache line even though it needs a third of the data.
func sumXAoS(pts []pointAoS) float32 {
	var sum float32
	for i := range pts {
		sum += pts[i].X
	}
	return sum
}

// sumXSoA reads X values back to back.
func sumXSoA(pts pointsSoA) float32 {
	var sum float32
	for _, x := range pts.X {
		sum += x
	}
	return sum
}

func demoLayout() {
	const n = 1000
	fmt.Println("  sum of x (AoS):", sumXAoS(makeAoS(n)))
	fmt.Println("  sum of x (SoA):", sumXSoA(makeSoA(n)))
	fmt.Println("  SoA is usually faster when a loop reads a single field; see BenchmarkSumX*.")
}
