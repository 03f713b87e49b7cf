package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// ── Strategy ─────────────────────────────────────────────────────────────────

// Strategy turns a list of letters into a single string.
type Strategy interface {
	Apply(data []string) string
}

// StrategyFunc lets an ordinary function be used as a Strategy.
type StrategyFunc func(data []string) string

func (f StrategyFunc) Apply(data []string) string { return f(data) }

// sortedLetters concatenates data and sorts the result.
func sortedLetters(data []string) string {
	r := []rune(strings.Join(data, ""))
	slices.Sort(r)
	return string(r)
}

// reversedLetters is sortedLetters in descending order.
func reversedLetters(data []string) string {
	r := []rune(sortedLetters(data))
	slices.Reverse(r)
	return string(r)
}

type sorter struct {
	strategy Strategy
}

func (s *sorter) setStrategy(st Strategy) { s.strategy = st }

func (s *sorter) run(data []string) string {
	if s.strategy == nil {
		return "strategy isn't set"
	}
	return s.strategy.Apply(data)
}

var letters = []string{"a", "e", "c", "b", "d"}

func demoStrategy() {
	var s sorter
	fmt.Println("  no strategy:", s.run(letters))

	s.setStrategy(StrategyFunc(sortedLetters))
	fmt.Println("  ascending:  ", s.run(letters))

	s.setStrategy(StrategyFunc(reversedLetters))
	fmt.Println("  descending: ", s.run(letters))
}

// ── Observer ─────────────────────────────────────────────────────────────────

// Observer receives every message published by a Subject it is attached to.
type Observer interface {
	Update(message string)
}

// Subject keeps a list of observers and notifies them in attach order.
type Subject struct {
	mu        sync.Mutex
	observers []Observer
	message   string
}

func (s *Subject) Attach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Detach removes o. Detaching an observer that is not attached is a no-op.
func (s *Subject) Detach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(x Observer) bool { return x == o })
}

// Publish stores message and notifies a snapshot of the observers, so an
// observer may detach itself from inside Update.
func (s *Subject) Publish(message string) {
	s.mu.Lock()
	s.message = message
	snapshot := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range snapshot {
		o.Update(message)
	}
}

var observerSeq atomic.Int64

// printer is an Observer that prints and remembers each message.
type printer struct {
	id       int64
	out      io.Writer
	subject  *Subject
	received []string
}

func newPrinter(s *Subject, out io.Writer) *printer {
	p := &printer{id: observerSeq.Add(1), out: out, subject: s}
	s.Attach(p)
	fmt.Fprintf(out, "  hi, I'm observer %d\n", p.id)
	return p
}

func (p *printer) Update(message string) {
	p.received = append(p.received, message)
	fmt.Fprintf(p.out, "  observer %d: a new message is available → %s\n", p.id, message)
}

func (p *printer) leave() {
	p.subject.Detach(p)
	fmt.Fprintf(p.out, "  observer %d removed from the list\n", p.id)
}

func demoObserver(out io.Writer) {
	subject := &Subject{}
	first := newPrinter(subject, out)
	second := newPrinter(subject, out)

	subject.Publish("Hello World! :D")
	second.leave()
	subject.Publish("The weather is hot today! ;)")

	fmt.Fprintf(out, "  observer %d got %d messages, observer %d got %d\n",
		first.id, len(first.received), second.id, len(second.received))
}
