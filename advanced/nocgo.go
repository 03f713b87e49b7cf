//go:build !cgo

package main

import "fmt"

const cgoEnabled = false

// addInC stands in for the C function when cgo is disabled.
func addInC(a, b int) int { return a + b }

func demoCgo() {
	fmt.Println("  cgo disabled; pure Go fallback: 3 + 4 =", addInC(3, 4))
}
