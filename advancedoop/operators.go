package main

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Complex is a user-defined type. Go has no operator overloading, so
// arithmetic is spelled as methods.
type Complex struct {
	Re, Im float64
}

func (c Complex) Add(o Complex) Complex { return Complex{c.Re + o.Re, c.Im + o.Im} }

func (c Complex) Mul(o Complex) Complex {
	return Complex{c.Re*o.Re - c.Im*o.Im, c.Re*o.Im + c.Im*o.Re}
}

// String is what fmt uses for %v, the analogue of operator<<.
func (c Complex) String() string { return fmt.Sprintf("%g + %gi", c.Re, c.Im) }

// Meters is a defined numeric type: + - * / work on it directly because
// they come from its underlying type, and mixing it with plain float64
// values needs an explicit conversion.
type Meters float64

func demoOperators() {
	c1 := Complex{3, 4}
	c2 := Complex{1, 2}
	fmt.Println("  c1:      ", c1)
	fmt.Println("  c2:      ", c2)
	fmt.Println("  c1 + c2 =", c1.Add(c2))
	fmt.Println("  c1 * c2 =", c1.Mul(c2))

	// Built-in complex numbers DO have operators.
	b1, b2 := complex(3, 4), complex(1, 2)
	fmt.Println("  builtin complex128 sum:    ", b1+b2)
	fmt.Println("  builtin complex128 product:", b1*b2)

	d := Meters(1.5) + Meters(2)
	fmt.Printf("  Meters(1.5) + Meters(2) = %v (%T)\n", d, d)

	// 26.6 fixed point from x/image: + and - are native integer ops,
	// multiplication needs Mul to rescale.
	x := fixed.I(3) + fixed.Int26_6(16) // 3.25
	y := fixed.I(2)
	fmt.Printf("  fixed %v + %v = %v\n", x, y, x+y)
	fmt.Printf("  fixed %v Mul %v = %v (floor %d)\n", x, y, x.Mul(y), x.Mul(y).Floor())
}
