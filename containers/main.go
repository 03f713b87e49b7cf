package main

import "fmt"

// Each demo covers the built-in containers, the container/* packages,
// iterators and the slices/maps algorithms (Go 1.21+).
//
// Run:
//
//	go run .
func main() {
	section("Containers — slice, list, map, set")
	demoContainers()

	section("Iterators — range, index loops, iter.Seq (Go 1.23)")
	demoIterators()

	section("Algorithms — sort, search, for-each, min/max")
	demoAlgorithms()

	section("Priority queue — container/heap")
	demoHeap()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
