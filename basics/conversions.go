package main

import (
	"fmt"
	"strconv"
	"unsafe"
)

// Base and Derived illustrate a checked downcast. In Go the "base class"
// is an interface and the downcast is a type assertion.
type Base interface {
	Name() string
}

type Derived struct{}

func (Derived) Name() string { return "Derived" }
func (Derived) Print()       { fmt.Println("  Derived.Print called after assertion") }

func demoConversions() {
	// ── Numeric conversion ────────────────────────────────────────────────────
	// Go never converts implicitly between numeric types. T(v) truncates
	// floats toward zero.
	d := 3.99
	i := int(d)
	fmt.Printf("  int(%.2f) = %d\n", d, i)

	wide := 300
	small := int8(wide) // wraps modulo 256, no overflow check
	fmt.Printf("  int8(%d) = %d\n", wide, small)

	// String ↔ number goes through strconv, never through a cast.
	n, err := strconv.Atoi("42")
	fmt.Printf("  strconv.Atoi(\"42\") = %d err=%v\n", n, err)
	_, err = strconv.Atoi("forty-two")
	fmt.Printf("  strconv.Atoi(\"forty-two\") err=%v\n", err)
	fmt.Printf("  string(rune(65)) = %q  strconv.Itoa(65) = %q\n", string(rune(65)), strconv.Itoa(65))

	// ── Checked downcast: type assertion ──────────────────────────────────────
	var b Base = Derived{}
	if der, ok := b.(Derived); ok {
		der.Print()
	}
	if _, ok := b.(fmt.Stringer); !ok {
		fmt.Println("  Derived is not a fmt.Stringer (ok=false, no panic)")
	}

	// ── Reinterpreting memory: unsafe ─────────────────────────────────────────
	// Go has no const_cast; constants are not addressable at all. Reading the
	// bytes of a value requires unsafe and is platform dependent.
	fmt.Printf("  first byte of int32(65): %q\n", firstByte(65))
	f := float32(1.0)
	bits := *(*uint32)(unsafe.Pointer(&f))
	fmt.Printf("  float32(1.0) bits = %#08x\n", bits)
}

// firstByte returns the lowest-addressed byte of v. On little-endian
// machines that is the least significant byte.
func firstByte(v int32) byte {
	return *(*byte)(unsafe.Pointer(&v))
}
