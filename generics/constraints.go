package main

import (
	"cmp"
	"fmt"
	"strings"
)

// Max uses the standard cmp.Ordered constraint.
func Max[T cmp.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}

// Number is a union constraint. It can only be used as a constraint,
// never as the type of a variable.
type Number interface {
	~int | ~int64 | ~float64
}

func Sum[T Number](nums ...T) T {
	var total T
	for _, n := range nums {
		total += n
	}
	return total
}

// JoinStrings requires a method, like any ordinary interface.
func JoinStrings[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, sep)
}

// Zero returns the zero value of any type parameter.
func Zero[T any]() T {
	var z T
	return z
}

func demoConstraints() {
	fmt.Println("  Max(3, 9, 4)            =", Max(3, 9, 4))
	fmt.Println("  Max(\"pear\", \"apple\")   =", Max("pear", "apple"))
	fmt.Println("  Sum(1.5, 2.5)           =", Sum(1.5, 2.5))
	fmt.Println("  Sum(Score(1), Score(2)) =", Sum[Score](1, 2))
	fmt.Println("  JoinStrings(temps)      =", JoinStrings([]Temperature{20, 21.5}, ", "))
	fmt.Printf("  Zero[string]()=%q Zero[*int]()=%v\n", Zero[string](), Zero[*int]())
}
