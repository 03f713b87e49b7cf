package main

import "fmt"

// Each demo covers arrays, slices and strings.
//
// Run:
//
//	go run .
func main() {
	section("Arrays — fixed size, value semantics, 2-D")
	demoArrays()

	section("Slices — append, len/cap, bounds checks")
	demoSlices()

	section("Byte strings — []byte, copy, NUL-free")
	demoByteStrings()

	section("Strings — immutable UTF-8, strings package, runes")
	demoStrings()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
