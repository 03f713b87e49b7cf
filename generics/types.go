package main

import "fmt"

// Box holds one value of any type.
type Box[T any] struct {
	content T
}

func NewBox[T any](v T) Box[T] { return Box[T]{content: v} }

func (b Box[T]) Content() T { return b.content }

// Map cannot be a method (methods may not add type parameters), so it is
// a top-level function taking the box.
func MapBox[T, U any](b Box[T], f func(T) U) Box[U] {
	return NewBox(f(b.content))
}

// Pair is generic over two types; the zero value is usable.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string { return fmt.Sprintf("%v=%v", p.Key, p.Value) }

func demoTypes() {
	intBox := NewBox(123)
	fmt.Println("  Box[int].Content():   ", intBox.Content())

	strBox := NewBox("Generic Programming")
	fmt.Println("  Box[string].Content():", strBox.Content())

	lenBox := MapBox(strBox, func(s string) int { return len(s) })
	fmt.Printf("  MapBox → %T with %d\n", lenBox, lenBox.Content())

	pairs := []Pair[string, int]{{"a", 1}, {"b", 2}}
	fmt.Println("  pairs:", pairs)
}
