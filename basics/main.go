package main

import (
	"fmt"
	"os"
)

// Each demo covers one piece of basic Go syntax.
//
// Run:
//
//	go run .
//	echo "Ada\n36" | go run .
func main() {
	section("Variables and types — zero values, :=, aliases")
	demoVariables()

	section("Constants — typed, untyped, iota")
	demoConstants()

	section("Operators — bit flags with iota")
	demoFlags()

	section("Conversions — numeric, interface assertion, unsafe")
	demoConversions()

	section("Packages — import aliases and exported names")
	demoPackages()

	section("Input/Output — reading from stdin")
	demoInput(os.Stdin, os.Stdout)
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
