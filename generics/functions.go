package main

import "fmt"

// Addable lists the types whose + operator Add may use. The ~ admits
// defined types such as `type Score int`.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Add works for numbers and strings alike.
func Add[T Addable](a, b T) T { return a + b }

// PrintPair takes two independent type parameters.
func PrintPair[T, U any](first T, second U) string {
	return fmt.Sprintf("(%v, %v)", first, second)
}

type Score int

func demoFunctions() {
	fmt.Println("  Add(5, 10)               =", Add(5, 10))
	fmt.Println("  Add(3.14, 1.618)         =", Add(3.14, 1.618))
	fmt.Println("  Add(\"Hello\", \" World\")  =", Add("Hello", " World"))
	fmt.Println("  Add(Score(7), Score(8))  =", Add(Score(7), Score(8)))

	// Inference fails when arguments disagree; instantiate explicitly.
	fmt.Println("  Add[float64](1, 2.5)     =", Add[float64](1, 2.5))

	fmt.Println("  PrintPair(10, \"apples\")  =", PrintPair(10, "apples"))
	fmt.Println("  PrintPair(3.5, true)     =", PrintPair(3.5, true))
}
