package main

import (
	"errors"
	"fmt"
)

// findPair scans a rows×cols grid in row-major order and returns the first
// cell for which match is true. visited counts the cells looked at,
// including the match.
func findPair(rows, cols int, match func(i, j int) bool) (i, j, visited int, found bool) {
outer:
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			visited++
			if match(i, j) {
				found = true
				break outer // leaves BOTH loops; i and j keep their values
			}
		}
	}
	return i, j, visited, found
}

func demoLabeledBreak() {
	i, j, visited, found := findPair(5, 5, func(i, j int) bool { return i == 2 && j == 3 })
	fmt.Printf("  found=%v at i=%d j=%d after visiting %d cells\n", found, i, j, visited)
}

func demoGoto() {
	// goto may not jump over variable declarations or into a block.
	n := 0
loop:
	if n < 3 {
		fmt.Println("  goto iteration", n)
		n++
		goto loop
	}
	fmt.Println("  done after", n, "iterations")
}

// errJump is the value carried by the non-local jump. Using a private
// type means recover can tell our jump apart from a genuine crash.
type errJump struct{ code int }

func jumpFromDeep(depth int) {
	if depth == 0 {
		fmt.Println("  deepest frame: jumping out")
		panic(errJump{code: 1})
	}
	jumpFromDeep(depth - 1)
	fmt.Println("  this line is never printed")
}

// catchJump runs fn and returns the code of an errJump that escaped it.
// Any other panic keeps propagating.
func catchJump(fn func()) (code int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		j, ok := r.(errJump)
		if !ok {
			panic(r)
		}
		code = j.code
		err = errors.New("returned via jump")
	}()
	fn()
	return 0, nil
}

func demoNonLocalJump() {
	code, err := catchJump(func() { jumpFromDeep(3) })
	fmt.Printf("  back in caller: code=%d err=%v\n", code, err)

	code, err = catchJump(func() { fmt.Println("  normal return, no jump") })
	fmt.Printf("  back in caller: code=%d err=%v\n", code, err)
}
