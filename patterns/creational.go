package main

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// ── Singleton ────────────────────────────────────────────────────────────────

type singleton struct {
	created time.Time
}

func (s *singleton) message() string { return "hello from the singleton" }

var (
	instanceOnce sync.Once
	instanceVal  *singleton
)

// instance returns the process-wide singleton, creating it on first use.
func instance() *singleton {
	instanceOnce.Do(func() {
		instanceVal = &singleton{created: time.Now()}
	})
	return instanceVal
}

// loader fetches values by key, collapsing concurrent requests for the same
// key into one call. It is the keyed, retryable cousin of sync.Once.
type loader struct {
	group singleflight.Group
	calls atomic.Int64
	fetch func(key string) (string, error)
}

func (l *loader) load(key string) (string, bool, error) {
	v, err, shared := l.group.Do(key, func() (any, error) {
		l.calls.Add(1)
		return l.fetch(key)
	})
	if err != nil {
		return "", shared, err
	}
	return v.(string), shared, nil
}

func demoSingleton() {
	fmt.Println(" ", instance().message())
	fmt.Println("  same instance:", instance() == instance())

	l := &loader{fetch: func(key string) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "config for " + key, nil
	}}
	var wg sync.WaitGroup
	for range 5 {
		wg.Go(func() { _, _, _ = l.load("db") })
	}
	wg.Wait()
	fmt.Printf("  5 concurrent loads of %q → %d fetch(es)\n", "db", l.calls.Load())
}

// ── Factory method ───────────────────────────────────────────────────────────

// Product is what a Creator makes.
type Product interface {
	Operation() string
}

type productA struct{}
type productB struct{}

func (productA) Operation() string { return "{Result of productA}" }
func (productB) Operation() string { return "{Result of productB}" }

// Creator defers the choice of Product to its implementations.
type Creator interface {
	FactoryMethod() Product
}

type creatorA struct{}
type creatorB struct{}

func (creatorA) FactoryMethod() Product { return productA{} }
func (creatorB) FactoryMethod() Product { return productB{} }

// someOperation is creator-independent business logic.
func someOperation(c Creator) string {
	return "Creator: the same creator code has just worked with " + c.FactoryMethod().Operation()
}

// newProduct is the table-driven factory Go code usually prefers.
func newProduct(kind string) (Product, error) {
	switch kind {
	case "a":
		return productA{}, nil
	case "b":
		return productB{}, nil
	}
	return nil, fmt.Errorf("unknown product kind %q", kind)
}

func demoFactory() {
	for _, c := range []Creator{creatorA{}, creatorB{}} {
		fmt.Println(" ", someOperation(c))
	}
	if _, err := newProduct("z"); err != nil {
		fmt.Println("  factory error:", err)
	}
}

// ── Builder ──────────────────────────────────────────────────────────────────

type Car struct {
	Engine string
	Body   string
	Seats  int
}

func (c Car) Specifications() string {
	return fmt.Sprintf("Car specs: Engine=%s, Body=%s, Seats=%d", c.Engine, c.Body, c.Seats)
}

// CarBuilder assembles a Car step by step.
type CarBuilder interface {
	BuildEngine()
	BuildBody()
	BuildSeats()
	Car() Car
}

type sportsCarBuilder struct{ car Car }

func (b *sportsCarBuilder) BuildEngine() { b.car.Engine = "Sports Engine" }
func (b *sportsCarBuilder) BuildBody()   { b.car.Body = "Sports Body" }
func (b *sportsCarBuilder) BuildSeats()  { b.car.Seats = 2 }
func (b *sportsCarBuilder) Car() Car     { return b.car }

type familyCarBuilder struct{ car Car }

func (b *familyCarBuilder) BuildEngine() { b.car.Engine = "Hybrid Engine" }
func (b *familyCarBuilder) BuildBody()   { b.car.Body = "Estate Body" }
func (b *familyCarBuilder) BuildSeats()  { b.car.Seats = 5 }
func (b *familyCarBuilder) Car() Car     { return b.car }

// construct runs the build steps in order.
func construct(b CarBuilder) Car {
	b.BuildEngine()
	b.BuildBody()
	b.BuildSeats()
	return b.Car()
}

func demoBuilder() {
	fmt.Println(" ", construct(&sportsCarBuilder{}).Specifications())
	fmt.Println(" ", construct(&familyCarBuilder{}).Specifications())
}

// ── Prototype ────────────────────────────────────────────────────────────────

// Prototype can copy itself without the caller knowing its concrete type.
type Prototype interface {
	Clone() Prototype
	WhoAmI() string
}

type document struct {
	title string
	tags  []string
}

// Clone deep-copies tags so the clone can be edited independently.
func (d *document) Clone() Prototype {
	return &document{title: d.title, tags: slices.Clone(d.tags)}
}

func (d *document) WhoAmI() string { return fmt.Sprintf("document %q %v", d.title, d.tags) }

func demoPrototype() {
	original := &document{title: "report", tags: []string{"draft"}}
	clone := original.Clone().(*document)
	clone.tags[0] = "final"

	fmt.Println("  original:", original.WhoAmI())
	fmt.Println("  clone:   ", clone.WhoAmI())
}
