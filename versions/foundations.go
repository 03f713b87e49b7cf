package main

import (
	"fmt"
	"strings"
)

func demoInference() {
	x := 5            // int
	y := 3.14         // float64
	z := "inferred"   // string
	w := []rune("go") // []rune
	fmt.Printf("  x %T, y %T, z %T, w %T\n", x, y, z, w)

	// Return types are always declared, but callers rarely spell them.
	product := multiply(5, 10)
	fmt.Printf("  multiply(5, 10) = %d (%T)\n", product, product)
}

func multiply(a, b int) int { return a * b }

func demoRangeForms() {
	numbers := []int{1, 2, 3, 4, 5}

	fmt.Print("  values:")
	for _, n := range numbers {
		fmt.Print(" ", n)
	}
	fmt.Print("\n  indices:")
	for i := range numbers {
		fmt.Print(" ", i)
	}
	fmt.Print("\n  integers (1.22):")
	for i := range 3 {
		fmt.Print(" ", i)
	}
	fmt.Println()
}

func demoClosures() {
	numbers := []int{1, 2, 3, 4, 5}
	sum := 0
	for _, n := range numbers {
		func() { sum += n }() // captures sum by reference
	}
	fmt.Println("  sum via closure:", sum)

	// Since 1.22 each iteration has its own n, so these report 0 1 2.
	var fns []func() int
	for n := range 3 {
		fns = append(fns, func() int { return n })
	}
	fmt.Print("  per-iteration capture:")
	for _, f := range fns {
		fmt.Print(" ", f())
	}
	fmt.Println()

	// A generic function fills the role of an auto-parameter lambda.
	fmt.Println("  describe:", describe(7), describe("seven"), describe(7.5))
}

func describe[T any](v T) string { return fmt.Sprintf("%v(%T)", v, v) }

// buffer owns a byte slice. transfer hands the slice to a new owner and
// leaves the source empty, which is what a move does.
type buffer struct {
	data []byte
}

func (b *buffer) transfer() buffer {
	out := buffer{data: b.data}
	b.data = nil
	return out
}

func demoMoveLikeTransfer() {
	src := buffer{data: []byte(strings.Repeat("x", 100))}
	dst := src.transfer()
	fmt.Printf("  after transfer: src len=%d, dst len=%d\n", len(src.data), len(dst.data))
}

func demoLiterals() {
	binary := 0b1010
	octal := 0o17
	hex := 0xFF
	million := 1_000_000
	fmt.Printf("  0b1010=%d 0o17=%d 0xFF=%d 1_000_000=%d\n", binary, octal, hex, million)
	fmt.Printf("  raw string: %s\n", `C:\no\escapes`)
}
