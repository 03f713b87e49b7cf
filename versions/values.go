package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func minMax(values []int) (lo, hi int) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func demoMultiAssign() {
	lo, hi := minMax([]int{4, 9, 1, 7})
	fmt.Println("  min, max:", lo, hi)

	ages := map[string]int{"Alice": 30}
	for name, age := range ages {
		fmt.Printf("  %s is %d\n", name, age)
	}

	lo, hi = hi, lo
	fmt.Println("  swapped:", lo, hi)
}

func demoIfInit() {
	ages := map[string]int{"Alice": 30, "Bob": 25}
	if age, ok := ages["Bob"]; ok {
		fmt.Println("  found Bob:", age)
	}
	switch n, err := strconv.Atoi("42"); {
	case err != nil:
		fmt.Println("  parse error:", err)
	default:
		fmt.Println("  parsed:", n)
	}
}

// firstEven returns the first even value and whether there was one.
func firstEven(values []int) (int, bool) {
	for _, v := range values {
		if v%2 == 0 {
			return v, true
		}
	}
	return 0, false
}

func demoOptional() {
	for _, in := range [][]int{{1, 3, 4}, {1, 3, 5}} {
		if v, ok := firstEven(in); ok {
			fmt.Printf("  firstEven(%v) = %d\n", in, v)
		} else {
			fmt.Printf("  firstEven(%v) = none\n", in)
		}
	}

	// A nil pointer is the other common "maybe" shape.
	var nickname *string
	fmt.Println("  nickname set:", nickname != nil)
}

// errWrongType is reported when a dynamic value holds another type.
var errWrongType = errors.New("wrong dynamic type")

func asInt(v any) (int, error) {
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: have %T, want int", errWrongType, v)
	}
	return n, nil
}

func demoAny() {
	var a any = 10
	fmt.Printf("  a holds %T %v\n", a, a)
	a = "hello"
	fmt.Printf("  a holds %T %q\n", a, a)

	if _, err := asInt(a); err != nil {
		fmt.Println("  bad cast:", err)
	}
}

// view returns a sub-string without copying; the result shares memory with s.
func view(s string, from, to int) string { return s[from:to] }

func demoViews() {
	s := "Hello, world"
	printView(s)
	printView(view(s, 7, 12))
	printView("a string literal")

	fields := strings.Fields("  split   into fields ")
	fmt.Printf("  fields share the input: %q\n", fields)
}

func printView(s string) { fmt.Printf("  view: %q (len %d)\n", s, len(s)) }
