package main

import "fmt"

// Each demo covers one part of generic programming in Go (Go 1.18+).
// Type parameters are checked once at definition time against their
// constraint, not re-checked per instantiation.
//
// Run:
//
//	go run .
func main() {
	section("Generic functions — Add, PrintPair, explicit instantiation")
	demoFunctions()

	section("Generic types — Box[T], methods on generic types")
	demoTypes()

	section("Specialization — type switch on any(v), interface upgrade")
	demoSpecialization()

	section("Constraints — ~T, unions, methods, cmp.Ordered")
	demoConstraints()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
