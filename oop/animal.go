package main

import (
	"fmt"
	"io"
)

// Speaker is satisfied implicitly: no "implements" clause anywhere.
type Speaker interface {
	MakeSound()
}

// Animal is the shared part of every animal. name is unexported, so code
// outside this package can only read it through Name.
type Animal struct {
	name string
	out  io.Writer
}

// NewAnimal plays the constructor role.
func NewAnimal(out io.Writer, name string) *Animal {
	fmt.Fprintf(out, "  Animal named %s created.\n", name)
	return &Animal{name: name, out: out}
}

func (a *Animal) Name() string { return a.name }

// MakeSound is the default behaviour.
func (a *Animal) MakeSound() {
	fmt.Fprintf(a.out, "  %s makes a generic sound.\n", a.name)
}

// Close stands in for a destructor. Go has no destructors; resources are
// released explicitly, usually with defer.
func (a *Animal) Close() {
	fmt.Fprintf(a.out, "  Animal named %s destroyed.\n", a.name)
}

// Dog embeds *Animal: Name and Close are promoted, MakeSound is shadowed.
// This is composition, not inheritance; a *Dog is not an *Animal.
type Dog struct {
	*Animal
}

func NewDog(out io.Writer, name string) *Dog {
	return &Dog{Animal: NewAnimal(out, name)}
}

func (d *Dog) MakeSound() {
	fmt.Fprintf(d.out, "  %s says: Woof!\n", d.Name())
}

type Cat struct {
	*Animal
}

func NewCat(out io.Writer, name string) *Cat {
	return &Cat{Animal: NewAnimal(out, name)}
}

func (c *Cat) MakeSound() {
	fmt.Fprintf(c.out, "  %s says: Meow!\n", c.Name())
}

// AnimalSound dispatches dynamically through the interface.
func AnimalSound(s Speaker) {
	s.MakeSound()
}
