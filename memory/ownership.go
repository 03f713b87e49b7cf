package main

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Unique holds a value that has exactly one owner at a time. Take moves
// the value out, leaving the Unique empty, like moving from a unique_ptr.
type Unique[T any] struct {
	v *T
}

// NewUnique takes ownership of v.
func NewUnique[T any](v T) Unique[T] { return Unique[T]{v: &v} }

// Get returns the owned value, or false once it has been moved out.
func (u *Unique[T]) Get() (T, bool) {
	if u.v == nil {
		var zero T
		return zero, false
	}
	return *u.v, true
}

// Take transfers ownership to the returned Unique.
func (u *Unique[T]) Take() Unique[T] {
	out := Unique[T]{v: u.v}
	u.v = nil
	return out
}

func demoUnique() {
	u1 := NewUnique(25)
	v, _ := u1.Get()
	fmt.Println("  value from u1:", v)

	u2 := u1.Take()
	v, _ = u2.Get()
	_, ok := u1.Get()
	fmt.Printf("  after Take: u2=%d, u1 still owns a value: %v\n", v, ok)
}

// ErrReleased is returned when a Shared handle is used after Release.
var ErrReleased = errors.New("shared handle already released")

// Shared is a reference-counted handle. The release callback runs exactly
// once, when the last handle is released. Go's GC makes this unnecessary
// for memory; it matters for other resources (files, connections).
type Shared[T any] struct {
	state *sharedState[T]
	done  atomic.Bool
}

type sharedState[T any] struct {
	value   T
	refs    atomic.Int64
	release func(T)
}

// NewShared wraps v with a count of one.
func NewShared[T any](v T, release func(T)) *Shared[T] {
	st := &sharedState[T]{value: v, release: release}
	st.refs.Store(1)
	return &Shared[T]{state: st}
}

// Clone returns a new handle to the same value and bumps the count.
func (s *Shared[T]) Clone() (*Shared[T], error) {
	if s.done.Load() {
		return nil, ErrReleased
	}
	s.state.refs.Add(1)
	return &Shared[T]{state: s.state}, nil
}

// Value returns the shared value.
func (s *Shared[T]) Value() (T, error) {
	if s.done.Load() {
		var zero T
		return zero, ErrReleased
	}
	return s.state.value, nil
}

// UseCount reports the number of live handles.
func (s *Shared[T]) UseCount() int64 { return s.state.refs.Load() }

// Release drops this handle. Releasing twice returns ErrReleased.
func (s *Shared[T]) Release() error {
	if !s.done.CompareAndSwap(false, true) {
		return ErrReleased
	}
	if s.state.refs.Add(-1) == 0 && s.state.release != nil {
		s.state.release(s.state.value)
	}
	return nil
}

type resource struct{ name string }

func newResource(name string) *resource {
	fmt.Printf("  %s constructed\n", name)
	return &resource{name: name}
}

func demoShared() {
	outer := NewShared(newResource("MyResource"), func(r *resource) {
		fmt.Printf("  %s released\n", r.name)
	})
	{
		inner, _ := outer.Clone()
		fmt.Println("  use count:", inner.UseCount())
		_ = inner.Release()
	}
	fmt.Println("  use count after inner scope:", outer.UseCount())
	_ = outer.Release()
	fmt.Println("  second Release:", outer.Release())
}
