package main

import (
	"cmp"
	"fmt"
	"iter"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
)

// Integer is the constraint a concept would express.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func add[T Integer](a, b T) T { return a + b }

func demoConstraints() {
	type small int8
	fmt.Println("  add(5, 10):", add(5, 10))
	fmt.Println("  add(small(3), small(4)):", add(small(3), small(4)))
	// add(1.5, 2.5) does not compile: float64 does not satisfy Integer.
}

// Filter yields the values of seq that satisfy keep.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields f(v) for every v in seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// evenSquares filters even numbers and squares them lazily.
func evenSquares(numbers []int) []int {
	evens := Filter(slices.Values(numbers), func(n int) bool { return n%2 == 0 })
	return slices.Collect(Map(evens, func(n int) int { return n * n }))
}

func demoPipeline() {
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fmt.Println("  squares of even numbers:", evenSquares(numbers))
}

type point struct {
	X, Y int
}

// comparePoints orders by X, then by Y. It returns -1, 0 or +1.
func comparePoints(a, b point) int {
	return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
}

func demoCompare() {
	p1, p2 := point{1, 2}, point{1, 3}
	switch c := comparePoints(p1, p2); {
	case c < 0:
		fmt.Println("  p1 is less than p2")
	case c > 0:
		fmt.Println("  p1 is greater than p2")
	default:
		fmt.Println("  p1 is equal to p2")
	}
	fmt.Println("  == works on comparable structs:", p1 == point{1, 2})

	pts := []point{{2, 1}, {1, 3}, {1, 2}}
	slices.SortFunc(pts, comparePoints)
	fmt.Println("  sorted:", pts)
}

type person struct {
	Name string
	Age  int
	City string
}

func demoStructLiterals() {
	p := person{Name: "Alice", Age: 30, City: "New York"}
	fmt.Printf("  %s is %d and lives in %s.\n", p.Name, p.Age, p.City)
	partial := person{Name: "Bob"}
	fmt.Printf("  unnamed fields get zero values: %+v\n", partial)
}

func demoFormatting() {
	name, age := "Bob", 25
	s := fmt.Sprintf("User %s is %d years old.", name, age)
	fmt.Println(" ", s)
	fmt.Printf("  %-8s|%6.2f|%x|%q|%v\n", "left", 3.14159, 255, "quoted", []int{1, 2})
	fmt.Printf("  %+v / %#v\n", point{1, 2}, point{1, 2})
}

// fibonacci is an endless push iterator.
func fibonacci() iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 0, 1
		for {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// takePulled resumes fibonacci n times through iter.Pull, the way a
// caller drives a coroutine.
func takePulled(n int) []int {
	next, stop := iter.Pull(fibonacci())
	defer stop()

	out := make([]int, 0, n)
	for range n {
		v, ok := next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func demoCoroutines() {
	fmt.Println("  first 10 Fibonacci numbers:", takePulled(10))
}

// moduleSummary reports the main module path and Go version the binary
// was built with.
func moduleSummary() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "no build info (" + runtime.Version() + ")"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "module %s, built with %s", cmp.Or(info.Main.Path, "(unknown)"), info.GoVersion)
	for _, s := range info.Settings {
		if s.Key == "GOOS" || s.Key == "GOARCH" {
			fmt.Fprintf(&b, ", %s=%s", s.Key, s.Value)
		}
	}
	return b.String()
}

func demoBuildInfo() {
	fmt.Println(" ", moduleSummary())
	fmt.Println("  runtime:", runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)
}
