package main

import (
	"fmt"
	"math/big"
)

func setByValue(x int) {
	x = 99
	fmt.Println("  inside setByValue, x =", x)
}

// setByPointer receives a copy of the pointer; the pointee is shared.
func setByPointer(x *int) {
	*x = 99
	fmt.Println("  inside setByPointer, *x =", *x)
}

// appendByValue gets a copy of the slice header: element writes are
// visible to the caller, but the append's new length is not.
func appendByValue(s []int) {
	s[0] = -1
	s = append(s, 100)
	_ = s
}

func demoParameters() {
	val := 10
	setByValue(val)
	fmt.Println("  after setByValue, val =", val)

	val = 10
	setByPointer(&val)
	fmt.Println("  after setByPointer, val =", val)

	s := []int{1, 2, 3}
	appendByValue(s)
	fmt.Println("  after appendByValue, s =", s, "(element changed, length not)")
}

func add(a, b int) int { return a + b }

// divmod returns two results; callers must take both or discard with _.
func divmod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	return // naked return of the named results
}

func demoReturns() {
	fmt.Println("  add(5, 3) =", add(5, 3))
	q, r := divmod(17, 5)
	fmt.Printf("  divmod(17, 5) = %d r %d\n", q, r)
	_, r = divmod(9, 4)
	fmt.Println("  only the remainder of 9/4:", r)
}

// factorial computes n! recursively. n <= 1 yields 1; the result overflows
// uint64 for n > 20.
func factorial(n int) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(n) * factorial(n-1)
}

// bigFactorial has no overflow limit.
func bigFactorial(n int64) *big.Int {
	return new(big.Int).MulRange(1, n)
}

func demoRecursion() {
	fmt.Println("  factorial(5)  =", factorial(5))
	fmt.Println("  factorial(20) =", factorial(20))
	fmt.Println("  bigFactorial(30) =", bigFactorial(30))
}
