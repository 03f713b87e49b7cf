package main

import (
	"fmt"
	"strconv"
)

// Render is generic, with a "specialization" for strings and for types
// that know how to render themselves. Go has no template specialization;
// the body picks a path at run time through any(v).
func Render[T any](v T) string {
	switch x := any(v).(type) {
	case string:
		return "specialized for string: " + strconv.Quote(x)
	case Renderer:
		return "specialized via Renderer: " + x.Render()
	default:
		return fmt.Sprintf("generic: %v", x)
	}
}

// Renderer is the interface-based way to opt into custom behaviour.
type Renderer interface {
	Render() string
}

type Temperature float64

func (t Temperature) Render() string { return strconv.FormatFloat(float64(t), 'f', 1, 64) + "°C" }
func (t Temperature) String() string { return t.Render() }

// Container reports which implementation a value would get, the analogue
// of a class template with a full specialization for char (rune here).
type Container[T any] struct {
	value T
}

func NewContainer[T any](v T) Container[T] { return Container[T]{value: v} }

func (c Container[T]) Describe() string {
	if r, ok := any(c.value).(rune); ok {
		return fmt.Sprintf("specialized container for rune: %c", r)
	}
	return fmt.Sprintf("generic container for %T", c.value)
}

func demoSpecialization() {
	fmt.Println(" ", Render(100))
	fmt.Println(" ", Render(6.28))
	fmt.Println(" ", Render("a specialized string"))
	fmt.Println(" ", Render(Temperature(21.5)))

	fmt.Println(" ", NewContainer(5).Describe())
	fmt.Println(" ", NewContainer('X').Describe())
}
