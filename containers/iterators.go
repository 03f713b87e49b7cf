package main

import (
	"fmt"
	"iter"
)

// addInPlace adds delta to every element through its index.
func addInPlace(nums []int, delta int) {
	for i := range nums {
		nums[i] += delta
	}
}

// Evens yields the even values of nums lazily. Returning false from
// yield stops the producer early.
func Evens(nums []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range nums {
			if n%2 == 0 && !yield(n) {
				return
			}
		}
	}
}

// Take stops after n values.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

func demoIterators() {
	numbers := []int{10, 20, 30, 40, 50}

	fmt.Print("  index loop: ")
	for i := 0; i < len(numbers); i++ {
		fmt.Print(numbers[i], " ")
	}
	fmt.Println()

	addInPlace(numbers, 5)
	fmt.Println("  after += 5:", numbers)

	fmt.Print("  first two evens of 1..10: ")
	for v := range Take(Evens([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}), 2) {
		fmt.Print(v, " ")
	}
	fmt.Println()
}
