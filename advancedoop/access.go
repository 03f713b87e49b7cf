package main

import "fmt"

// vault's secret is unexported. Every function in this package can read
// it, which covers what a friend declaration is used for. Code in other
// packages cannot.
type vault struct {
	secret int
}

func newVault() vault { return vault{secret: 42} }

// showSecret is a plain package-level function, no declaration needed.
func showSecret(v vault) string {
	return fmt.Sprintf("The secret value is: %d", v.secret)
}

func demoFriend() {
	fmt.Println(" ", showSecret(newVault()))
	// For a narrower circle, put the code in an internal/ package: only
	// packages rooted at the parent of internal/ may import it.
}
