package main

import "fmt"

type Engine struct{ running bool }

func (e *Engine) Start() string {
	e.running = true
	return "Engine started."
}

type Radio struct{ station string }

func (r *Radio) PlayMusic() string {
	if r.station == "" {
		r.station = "98.1 FM"
	}
	return "Playing music on " + r.station + "."
}

// Car gets both method sets by embedding. There is no ambiguity because
// Start and PlayMusic have different names.
type Car struct {
	Engine
	Radio
}

func demoEmbedding() {
	var car Car
	fmt.Println(" ", car.Start())
	fmt.Println(" ", car.PlayMusic())
	fmt.Println("  engine running:", car.running)
}

// PoweredDevice is the shared base of the diamond.
type PoweredDevice struct {
	powered bool
	id      int
}

var deviceCount int

func NewPoweredDevice() *PoweredDevice {
	deviceCount++
	fmt.Println("  PoweredDevice constructed, id", deviceCount)
	return &PoweredDevice{id: deviceCount}
}

func (d *PoweredDevice) PowerOn() string {
	d.powered = true
	return fmt.Sprintf("Device %d powered on.", d.id)
}

type Scanner struct{ *PoweredDevice }

func (Scanner) Scan() string { return "Scanning document." }

type Printer struct{ *PoweredDevice }

func (Printer) Print() string { return "Printing document." }

// Copier embeds Scanner and Printer, which both promote PowerOn at depth 1.
// Calling copier.PowerOn would be an ambiguous selector, so Copier also
// embeds the shared *PoweredDevice at depth 0, which wins.
type Copier struct {
	*PoweredDevice
	Scanner
	Printer
}

// NewCopier wires ONE PoweredDevice into every path, the equivalent of
// virtual inheritance.
func NewCopier() *Copier {
	dev := NewPoweredDevice()
	return &Copier{
		PoweredDevice: dev,
		Scanner:       Scanner{dev},
		Printer:       Printer{dev},
	}
}

func demoDiamond() {
	c := NewCopier()
	fmt.Println(" ", c.PowerOn())
	fmt.Println(" ", c.Scan())
	fmt.Println(" ", c.Print())
	fmt.Println("  scanner and printer share the device:",
		c.Scanner.PoweredDevice == c.Printer.PoweredDevice)
}
