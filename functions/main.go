package main

import "fmt"

// Each demo covers one aspect of Go functions.
//
// Run:
//
//	go run .
func main() {
	greet("Meow")

	section("Parameters — everything is passed by value")
	demoParameters()

	section("Returns — multiple values, named results")
	demoReturns()

	section("Recursion — factorial")
	demoRecursion()

	section("No overloading — type switch and generics instead")
	demoOverloading()

	section("No default arguments — variadics and functional options")
	demoDefaults()

	section("Closures — function values that capture variables")
	demoClosures()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// greet is declared after main; Go needs no forward declarations.
func greet(name string) {
	fmt.Printf("Hello, %s!\n", name)
}
