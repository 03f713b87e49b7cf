package main

import "fmt"

// Each demo covers one way Go reports failure. Expected failures are
// ordinary error values. panic is for bugs and is recovered only at
// boundaries.
//
// Run:
//
//	go run .
func main() {
	section("Basic error return — division by zero")
	demoBasic()

	section("Standard error kinds — invalid argument vs out of range")
	demoKinds()

	section("Catch-all — recovering a panic of any value")
	demoCatchAll()

	section("Custom error type — empty data")
	demoCustom()

	section("Wrapping — %w, errors.Is/As through the chain")
	demoWrapping()

	section("errors.Join — collecting several failures")
	demoJoin()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
