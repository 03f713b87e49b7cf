package main

import (
	"fmt"
	m "math"
	str "strings" // import alias, the closest thing to `namespace MN = ...`
)

// value is unexported: visible only inside package main.
var value = 42

// Value is exported: a capital first letter is Go's only visibility keyword.
var Value = value

func demoPackages() {
	fmt.Println("  str.ToUpper(\"namespace\"):", str.ToUpper("namespace"))
	fmt.Println("  m.Sqrt(16):               ", m.Sqrt(16))
	fmt.Println("  package-level value:      ", value)
	fmt.Println("  exported Value:           ", Value)
}
