package main

import (
	"fmt"
	"strings"
)

// joinInts formats any int slice (including one taken from an array)
// as space-separated values.
func joinInts(nums []int) string {
	var sb strings.Builder
	for i, n := range nums {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n)
	}
	return sb.String()
}

func demoArrays() {
	// The length is part of the type: [5]int and [6]int are different types.
	numbers := [...]int{1, 2, 3, 4, 5}
	fmt.Printf("  %T: %s\n", numbers, joinInts(numbers[:]))

	// Arrays are values: assignment copies every element.
	copied := numbers
	copied[0] = 100
	fmt.Println("  original after modifying the copy:", numbers)

	matrix := [2][3]int{{1, 2, 3}, {4, 5, 6}}
	for _, row := range matrix {
		fmt.Println("  row:", joinInts(row[:]))
	}

	// Arrays of comparable elements are comparable.
	fmt.Println("  [3]int{1,2,3} == [3]int{1,2,3}:", [3]int{1, 2, 3} == [3]int{1, 2, 3})
}

// at returns s[i] or an error instead of panicking on a bad index.
func at(s []int, i int) (int, error) {
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("index %d out of range [0:%d]", i, len(s))
	}
	return s[i], nil
}

func demoSlices() {
	vec := []int{10, 20, 30, 40, 50}
	vec = append(vec, 60)
	fmt.Println("  elements:", joinInts(vec))
	fmt.Printf("  len=%d cap=%d\n", len(vec), cap(vec))

	if v, err := at(vec, 2); err == nil {
		fmt.Println("  element at index 2:", v)
	}
	if _, err := at(vec, 10); err != nil {
		fmt.Println("  checked access:", err)
	}

	// A plain index expression is also bounds-checked: it panics instead
	// of reading past the end.
	func() {
		defer func() { fmt.Println("  recovered:", recover()) }()
		i := 10
		_ = vec[i]
	}()
}
