package main

import (
	"fmt"
	"math"
)

// Shape is the abstract base: it has no data and cannot be instantiated.
// Any type with these methods is a Shape.
type Shape interface {
	Area() float64
	Perimeter() float64
}

// Describer composes Shape with fmt.Stringer.
type Describer interface {
	Shape
	fmt.Stringer
}

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) String() string     { return fmt.Sprintf("Circle(r=%.2f)", c.Radius) }

type Rectangle struct {
	Width, Height float64
}

func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%gx%g)", r.Width, r.Height)
}

// Triangle is a Shape but not a Describer: it has no String method.
type Triangle struct {
	A, B, C float64
}

func (t Triangle) Area() float64 {
	s := (t.A + t.B + t.C) / 2 // Heron
	return math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}
func (t Triangle) Perimeter() float64 { return t.A + t.B + t.C }

// Compile-time checks that the concrete types satisfy the interfaces.
var (
	_ Describer = Circle{}
	_ Describer = Rectangle{}
	_ Shape     = Triangle{}
)

func totalArea(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// kind names the concrete type behind a Shape.
func kind(s Shape) string {
	switch v := s.(type) {
	case Circle:
		return fmt.Sprintf("circle r=%.0f", v.Radius)
	case Rectangle:
		return fmt.Sprintf("rectangle %.0fx%.0f", v.Width, v.Height)
	case Triangle:
		return fmt.Sprintf("triangle %.0f/%.0f/%.0f", v.A, v.B, v.C)
	default:
		return "unknown"
	}
}

func demoShapes() {
	shapes := []Shape{Circle{Radius: 5}, Rectangle{Width: 4, Height: 6}, Triangle{A: 3, B: 4, C: 5}}
	for _, s := range shapes {
		fmt.Printf("  %-18s area=%8.4f perimeter=%8.4f\n", kind(s), s.Area(), s.Perimeter())
	}

	for _, s := range shapes {
		if d, ok := s.(Describer); ok {
			fmt.Println("  describes itself as", d)
		}
	}
	fmt.Printf("  total area: %.4f\n", totalArea(shapes))

	var none Shape
	fmt.Println("  zero Shape is nil:", none == nil)
}
