package main

import "fmt"

// Each demo covers a language feature that arrived in a particular Go
// release, grouped the way the features tend to be learned.
//
// Run:
//
//	go run .
func main() {
	section("Foundations — inference, range, closures, literals")
	demoInference()
	demoRangeForms()
	demoClosures()
	demoMoveLikeTransfer()
	demoLiterals()

	section("Values — multi-assign, if-init, comma-ok, any, views")
	demoMultiAssign()
	demoIfInit()
	demoOptional()
	demoAny()
	demoViews()

	section("Go 1.18–1.23 — constraints, iterators, cmp, formatting")
	demoConstraints()
	demoPipeline()
	demoCompare()
	demoStructLiterals()
	demoFormatting()
	demoCoroutines()
	demoBuildInfo()

	section("Go 1.21–1.25 — builtins, stack traces, WaitGroup.Go")
	demoBuiltins()
	demoStackTrace()
	demoWaitGroupGo()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
