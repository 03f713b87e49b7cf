package main

import (
	"fmt"
	"reflect"
)

// Constant expressions are folded by the compiler.
const (
	factorial0 = 1
	factorial1 = 1 * factorial0
	factorial2 = 2 * factorial1
	factorial3 = 3 * factorial2
	factorial4 = 4 * factorial3
	factorial5 = 5 * factorial4
)

// Array lengths must be non-negative constants, so these fail to compile
// unless factorial5 == 120.
var (
	_ [factorial5 - 120]struct{}
	_ [120 - factorial5]struct{}
)

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// factorial is the generic runtime counterpart of the constants above.
func factorial[T integer](n T) T {
	result := T(1)
	for i := T(2); i <= n; i++ {
		result *= i
	}
	return result
}

// isPointer reports whether T is a pointer type. The check uses only the
// type parameter, never the value.
func isPointer[T any](T) bool {
	return reflect.TypeFor[T]().Kind() == reflect.Pointer
}

func demoCompileTime() {
	fmt.Println("  factorial of 5 (constant):", factorial5)
	fmt.Println("  factorial of 10 (generic uint64):", factorial[uint64](10))

	a := 5
	p := &a
	for _, v := range []bool{isPointer(a), isPointer(p)} {
		if v {
			fmt.Println("  this is a pointer type")
		} else {
			fmt.Println("  this is not a pointer type")
		}
	}
}
