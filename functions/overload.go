package main

import (
	"fmt"
	"strings"
)

// describe replaces three overloads print(int), print(double), print(string)
// with one function taking any and a type switch.
func describe(v any) string {
	switch x := v.(type) {
	case int:
		return fmt.Sprintf("Printing an int: %d", x)
	case float64:
		return fmt.Sprintf("Printing a float64: %g", x)
	case string:
		return fmt.Sprintf("Printing a string: %s", x)
	default:
		return fmt.Sprintf("Printing a %T: %v", x, x)
	}
}

// square is generic instead of overloaded per numeric type. Small leaf
// functions like this are inlined by the compiler; Go has no inline keyword.
func square[T ~int | ~int64 | ~float64](x T) T { return x * x }

func demoOverloading() {
	for _, v := range []any{10, 3.14, "Hello Go", []int{1}} {
		fmt.Println(" ", describe(v))
	}
	fmt.Println("  square(7) =", square(7), " square(1.5) =", square(1.5))
}

// ── Defaults ─────────────────────────────────────────────────────────────────

const defaultMessage = "This is a default message."

// showMessage emulates an optional argument with a variadic parameter.
func showMessage(msg ...string) string {
	if len(msg) == 0 {
		return defaultMessage
	}
	return strings.Join(msg, " ")
}

// banner is configured with functional options, the idiomatic way to
// grow a parameter list without breaking callers.
type banner struct {
	text  string
	width int
	fill  rune
}

type bannerOption func(*banner)

func withWidth(n int) bannerOption { return func(b *banner) { b.width = n } }
func withFill(r rune) bannerOption { return func(b *banner) { b.fill = r } }

func newBanner(text string, opts ...bannerOption) banner {
	b := banner{text: text, width: len(text) + 4, fill: '*'}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b banner) String() string {
	pad := b.width - len(b.text)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	return strings.Repeat(string(b.fill), left) + b.text + strings.Repeat(string(b.fill), pad-left)
}

func demoDefaults() {
	fmt.Println(" ", showMessage("This is a custom message."))
	fmt.Println(" ", showMessage())
	fmt.Println(" ", newBanner("go"))
	fmt.Println(" ", newBanner("go", withWidth(10), withFill('=')))
}
