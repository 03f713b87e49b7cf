//go:build cgo

package main

/*
static int add_in_c(int a, int b) {
	return a + b;
}
*/
import "C"

import "fmt"

const cgoEnabled = true

func addInC(a, b int) int {
	return int(C.add_in_c(C.int(a), C.int(b)))
}

func demoCgo() {
	fmt.Println("  calling C function: 3 + 4 =", addInC(3, 4))
}
