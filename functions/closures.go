package main

import "fmt"

func forEach(nums []int, fn func(int)) {
	for _, n := range nums {
		fn(n)
	}
}

func countIf(nums []int, pred func(int) bool) int {
	n := 0
	for _, v := range nums {
		if pred(v) {
			n++
		}
	}
	return n
}

// multiplier returns a closure that captures factor by reference: the
// variable outlives this call and is moved to the heap by escape analysis.
func multiplier(factor int) func(int) int {
	return func(n int) int { return n * factor }
}

// counter returns a stateful closure.
func counter() func() int {
	c := 0
	return func() int {
		c++
		return c
	}
}

func demoClosures() {
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	fmt.Print("  numbers: ")
	forEach(numbers, func(n int) { fmt.Print(n, " ") })
	fmt.Println()

	evens := countIf(numbers, func(n int) bool { return n%2 == 0 })
	fmt.Printf("  there are %d even numbers\n", evens)

	factor := 10
	times := multiplier(factor)
	fmt.Printf("  5 multiplied by factor %d is %d\n", factor, times(5))

	next := counter()
	fmt.Println("  counter:", next(), next(), next())
}
