package main

import "fmt"

// Each demo covers a construct that class-based languages build with
// inheritance, and the Go feature that takes its place.
//
// Run:
//
//	go run .
func main() {
	section("Abstract types — interfaces, composed interfaces, type switch")
	demoShapes()

	section("Multiple embedding — a Car is built from an Engine and a Radio")
	demoEmbedding()

	section("The diamond — one shared embedded value, shallowest name wins")
	demoDiamond()

	section("Package-level access — the friend function analogue")
	demoFriend()

	section("Operator overloading — methods on defined types instead")
	demoOperators()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
