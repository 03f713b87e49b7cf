package main

import "fmt"

// Each demo covers one control-flow construct.
//
// Run:
//
//	go run .
func main() {
	section("Labeled break — leaving nested loops")
	demoLabeledBreak()

	section("goto — allowed, but rarely the right tool")
	demoGoto()

	section("panic/recover — a non-local jump out of a call chain")
	demoNonLocalJump()

	section("range — copies vs indexes, range over int")
	demoRange()

	section("switch — no fallthrough by default, tagless switch")
	demoSwitch()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
