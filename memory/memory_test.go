package main

import (
	"errors"
	"testing"
	"weak"
)

func TestUniqueTake(t *testing.T) {
	t.Parallel()

	u1 := NewUnique("gopher")
	u2 := u1.Take()

	if _, ok := u1.Get(); ok {
		t.Error("source still owns a value after Take")
	}
	if v, ok := u2.Get(); !ok || v != "gopher" {
		t.Errorf("u2.Get() = %q, %v; want gopher, true", v, ok)
	}

	u3 := u1.Take()
	if _, ok := u3.Get(); ok {
		t.Error("taking from an empty Unique produced a value")
	}
}

func TestSharedReleasesOnce(t *testing.T) {
	t.Parallel()

	released := 0
	a := NewShared(1, func(int) { released++ })
	b, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if got := a.UseCount(); got != 2 {
		t.Errorf("UseCount = %d; want 2", got)
	}

	if err := b.Release(); err != nil {
		t.Fatalf("b.Release: %v", err)
	}
	if released != 0 {
		t.Fatal("released while a handle is still live")
	}
	if err := b.Release(); !errors.Is(err, ErrReleased) {
		t.Errorf("double Release = %v; want ErrReleased", err)
	}
	if _, err := b.Value(); !errors.Is(err, ErrReleased) {
		t.Errorf("Value after Release = %v; want ErrReleased", err)
	}

	if v, err := a.Value(); err != nil || v != 1 {
		t.Errorf("a.Value() = %d, %v", v, err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("a.Release: %v", err)
	}
	if released != 1 {
		t.Errorf("release callback ran %d times; want 1", released)
	}
	if _, err := a.Clone(); !errors.Is(err, ErrReleased) {
		t.Errorf("Clone after Release = %v; want ErrReleased", err)
	}
}

func TestWeakWhileAlive(t *testing.T) {
	t.Parallel()

	p := &payload{value: 42}
	w := weak.Make(p)
	if v, ok := lockWeak(w); !ok || v != 42 {
		t.Errorf("lockWeak = %d, %v; want 42, true", v, ok)
	}
	_ = p.value
}

func TestEscapingCounter(t *testing.T) {
	t.Parallel()

	a, b := newCounter(1), newCounter(1)
	*a++
	if *a != 2 || *b != 1 {
		t.Errorf("counters share storage: a=%d b=%d", *a, *b)
	}
	if got := sumFixed(); got != 100 {
		t.Errorf("sumFixed = %d; want 100", got)
	}
}

// BenchmarkEscapingCounter allocates on every call; compare with
// BenchmarkStackSum using -benchmem.
func BenchmarkEscapingCounter(b *testing.B) {
	var sink *int
	for range b.N {
		sink = newCounter(1)
	}
	_ = sink
}

func BenchmarkStackSum(b *testing.B) {
	var sink int
	for range b.N {
		sink = sumFixed()
	}
	_ = sink
}
