package main

import (
	"fmt"
	"os"
)

// Go has no classes. Types carry methods, interfaces give polymorphism,
// and struct embedding gives reuse.
//
// Run:
//
//	go run .
func main() {
	section("Creating objects — constructors are plain functions")
	dog := NewDog(os.Stdout, "Buddy")
	cat := NewCat(os.Stdout, "Whiskers")

	section("Calling methods")
	dog.MakeSound()
	cat.MakeSound()

	section("Polymorphism — any type with the right methods is a Speaker")
	generic := NewDog(os.Stdout, "Generic Dog")
	for _, s := range []Speaker{dog, cat, generic, NewAnimal(os.Stdout, "Mystery")} {
		AnimalSound(s)
	}
	generic.Close()

	section("Encapsulation — unexported fields, exported accessors")
	fmt.Println("  dog.Name():", dog.Name())

	section("Objects going out of scope — explicit Close with defer")
	defer cat.Close()
	defer dog.Close()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
