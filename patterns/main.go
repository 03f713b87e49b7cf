package main

import (
	"fmt"
	"os"
)

// Each demo covers one classic design pattern in its Go form: interfaces
// and small structs instead of class hierarchies.
//
// Run:
//
//	go run .
func main() {
	section("Singleton — sync.Once and singleflight")
	demoSingleton()

	section("Factory method — creators returning products")
	demoFactory()

	section("Builder — director drives a step-by-step builder")
	demoBuilder()

	section("Prototype — Clone returns an independent copy")
	demoPrototype()

	section("Adapter — foreign API behind a local interface")
	demoAdapter()

	section("Decorator — wrapping a component")
	demoDecorator()

	section("Strategy — swappable algorithm")
	demoStrategy()

	section("Observer — attach, notify, detach")
	demoObserver(os.Stdout)
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
