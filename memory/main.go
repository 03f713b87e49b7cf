package main

import "fmt"

// Each demo covers pointers and how Go manages memory for you.
//
// Run:
//
//	go run .
//	go build -gcflags=-m . 2>&1 | grep escape   # see escape decisions
func main() {
	section("Pointers — &, *, no pointer arithmetic")
	demoPointers()

	section("Allocation — new, make, stack vs heap")
	demoAllocation()

	section("Unique ownership — transfer by handing off and clearing")
	demoUnique()

	section("Shared ownership — reference counting with Release")
	demoShared()

	section("Weak pointers and cleanups (Go 1.24)")
	demoWeak()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
