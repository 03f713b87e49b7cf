package main

import (
	"fmt"
	"slices"
	"strings"
)

// ── Adapter ──────────────────────────────────────────────────────────────────

// Target is the interface the client code expects.
type Target interface {
	Request() string
}

type defaultTarget struct{}

func (defaultTarget) Request() string { return "Target: the default target's behavior." }

// adaptee has a useful but incompatible API.
type adaptee struct{}

func (adaptee) SpecificRequest() string { return ".eetpadA eht fo roivaheb laicepS" }

// adapter makes an adaptee usable as a Target.
type adapter struct {
	a adaptee
}

func (ad adapter) Request() string {
	r := []rune(ad.a.SpecificRequest())
	slices.Reverse(r)
	return "Adapter: (TRANSLATED) " + string(r)
}

func demoAdapter() {
	for _, t := range []Target{defaultTarget{}, adapter{}} {
		fmt.Println(" ", t.Request())
	}
}

// ── Decorator ────────────────────────────────────────────────────────────────

// Component is the interface shared by the core object and its decorators.
type Component interface {
	Operation() string
}

type concreteComponent struct{}

func (concreteComponent) Operation() string { return "ConcreteComponent" }

// wrapDecorator surrounds the inner result with its name.
type wrapDecorator struct {
	name  string
	inner Component
}

func (d wrapDecorator) Operation() string {
	return d.name + "(" + d.inner.Operation() + ")"
}

// upperDecorator changes the inner result instead of wrapping it.
type upperDecorator struct {
	inner Component
}

func (d upperDecorator) Operation() string { return strings.ToUpper(d.inner.Operation()) }

func demoDecorator() {
	var simple Component = concreteComponent{}
	fmt.Println("  simple:   ", simple.Operation())

	decorated := wrapDecorator{name: "DecoratorA", inner: simple}
	fmt.Println("  decorated:", decorated.Operation())

	stacked := upperDecorator{inner: wrapDecorator{name: "DecoratorB", inner: decorated}}
	fmt.Println("  stacked:  ", stacked.Operation())
}
