package main

import (
	"fmt"
	"math"
)

// BigInt is a type alias: BigInt and int64 are the SAME type.
// Contrast with a defined type (type Celsius float64) which is a NEW type.
type BigInt = int64

// Celsius is a defined type with underlying type float64.
type Celsius float64

func demoVariables() {
	// Explicit declarations get the zero value until assigned.
	var (
		i int     // 0
		f float64 // 0
		s string  // ""
		b bool    // false
		p *int    // nil
	)
	fmt.Printf("  zero values: int=%d float64=%g string=%q bool=%v ptr=%v\n", i, f, s, b, p)

	// := declares and infers the type from the right-hand side.
	integerVar := 10
	runeVar := 'a'
	floatVar := float32(3.14)
	doubleVar := 3.14159
	boolVar := true
	fmt.Printf("  integerVar=%d (%T)\n", integerVar, integerVar)
	fmt.Printf("  runeVar=%c (%T — a rune is an int32 code point)\n", runeVar, runeVar)
	fmt.Printf("  floatVar=%g (%T)  doubleVar=%g (%T)\n", floatVar, floatVar, doubleVar, doubleVar)
	fmt.Printf("  boolVar=%v\n", boolVar)

	var big BigInt = 123456789012345
	fmt.Printf("  BigInt alias: %d (%T)\n", big, big) // prints int64

	var temp Celsius = 21.5
	fmt.Printf("  Celsius defined type: %.1f (%T)\n", temp, temp)

	// Integer sizes and limits.
	fmt.Printf("  math.MaxInt64=%d  math.MaxUint8=%d\n", int64(math.MaxInt64), math.MaxUint8)
}

// Pi is an untyped constant: it takes the type its context needs and keeps
// arbitrary precision until then.
const Pi = 3.14159

// MaxValue plays the role of a preprocessor #define. Go has no preprocessor;
// named constants are evaluated at compile time instead.
const MaxValue = 100

// compileTimeValue is a constant expression. Go has no constexpr functions:
// only constant expressions of literals, other constants and a few builtins
// (len of an array/string constant, unsafe.Sizeof, …) are folded.
const compileTimeValue = 2 * 2

func demoConstants() {
	fmt.Println("  Pi (untyped const):        ", Pi)
	fmt.Println("  compileTimeValue (2 * 2):  ", compileTimeValue)
	fmt.Println("  MaxValue:                  ", MaxValue)

	// Untyped constants can exceed any machine type as long as the final
	// use fits.
	const huge = 1 << 100
	fmt.Println("  huge >> 98:                ", huge>>98)

	// Identifiers may start with an underscore; a lone _ is the blank identifier.
	_int := 5
	_, second := 1, 2
	fmt.Printf("  _int=%d second=%d\n", _int, second)
}

// Flag is a bit set built with iota.
type Flag uint8

const (
	Flag1 Flag = 1 << iota // 1
	Flag2                  // 2
	Flag3                  // 4
)

// Has reports whether every bit of f is set in s.
func (s Flag) Has(f Flag) bool { return s&f == f }

// Set returns s with f added.
func (s Flag) Set(f Flag) Flag { return s | f }

// Clear returns s with f removed (&^ is Go's AND NOT operator).
func (s Flag) Clear(f Flag) Flag { return s &^ f }

func demoFlags() {
	myFlags := Flag1 | Flag3
	fmt.Printf("  flags set: %d (%03b)\n", myFlags, myFlags)
	for _, f := range []Flag{Flag1, Flag2, Flag3} {
		fmt.Printf("  Flag%d set: %v\n", bitIndex(f)+1, myFlags.Has(f))
	}

	myFlags = myFlags.Set(Flag2).Clear(Flag1)
	fmt.Printf("  after Set(Flag2).Clear(Flag1): %03b\n", myFlags)
}

func bitIndex(f Flag) int {
	n := 0
	for f > 1 {
		f >>= 1
		n++
	}
	return n
}
