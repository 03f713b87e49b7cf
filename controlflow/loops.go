package main

import "fmt"

// doubleInPlace doubles every element. Writing through the index is
// required: the range value v is a copy.
func doubleInPlace(nums []int) {
	for i := range nums {
		nums[i] *= 2
	}
}

func demoRange() {
	numbers := []int{1, 2, 3, 4, 5}

	fmt.Print("  iterate: ")
	for _, n := range numbers {
		fmt.Print(n, " ")
	}
	fmt.Println()

	// Assigning to the copy has no effect on the slice.
	for _, n := range numbers {
		n *= 2
		_ = n
	}
	fmt.Println("  after modifying the copy: ", numbers)

	doubleInPlace(numbers)
	fmt.Println("  after modifying by index: ", numbers)

	// Go 1.22: range over an integer.
	fmt.Print("  range 3: ")
	for i := range 3 {
		fmt.Print(i, " ")
	}
	fmt.Println()

	// Strings range by rune, not by byte.
	for i, r := range "héllo" {
		fmt.Printf("  byte offset %d → %q\n", i, r)
	}
}

// classify returns a label for n using a tagless switch.
func classify(n int) string {
	switch {
	case n < 0:
		return "negative"
	case n == 0:
		return "zero"
	case n%2 == 0:
		return "even"
	default:
		return "odd"
	}
}

func demoSwitch() {
	for _, n := range []int{-3, 0, 4, 7} {
		fmt.Printf("  classify(%d) = %s\n", n, classify(n))
	}

	// fallthrough must be explicit and moves to the NEXT case body
	// unconditionally.
	grade := 'B'
	switch grade {
	case 'A':
		fmt.Println("  excellent")
	case 'B':
		fmt.Println("  good")
		fallthrough
	case 'C':
		fmt.Println("  passed")
	default:
		fmt.Println("  failed")
	}
}
