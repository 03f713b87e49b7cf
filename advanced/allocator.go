package main

import (
	"fmt"
	"io"
	"unsafe"
)

// Tracking hands out slices of T and records how many bytes it allocated
// and released. Go has no allocator hook for built-in slices, so containers
// that want tracking allocate through it explicitly.
type Tracking[T any] struct {
	out       io.Writer
	allocated int
	freed     int
}

// NewTracking logs every allocation to out. A nil out is silent.
func NewTracking[T any](out io.Writer) *Tracking[T] {
	if out == nil {
		out = io.Discard
	}
	return &Tracking[T]{out: out}
}

func (t *Tracking[T]) size(n int) int {
	var zero T
	return n * int(unsafe.Sizeof(zero))
}

// Allocate returns an empty slice with capacity n.
func (t *Tracking[T]) Allocate(n int) []T {
	b := t.size(n)
	t.allocated += b
	fmt.Fprintf(t.out, "  allocating %d bytes\n", b)
	return make([]T, 0, n)
}

// Free records that s is no longer used. The memory itself is reclaimed by
// the garbage collector.
func (t *Tracking[T]) Free(s []T) {
	b := t.size(cap(s))
	t.freed += b
	fmt.Fprintf(t.out, "  deallocating %d bytes\n", b)
}

// InUse reports allocated minus freed bytes.
func (t *Tracking[T]) InUse() int { return t.allocated - t.freed }

// Vector is a growable slice whose storage comes from a Tracking allocator.
type Vector[T any] struct {
	alloc *Tracking[T]
	data  []T
}

func NewVector[T any](alloc *Tracking[T]) *Vector[T] {
	return &Vector[T]{alloc: alloc}
}

// Push appends v, doubling capacity when the vector is full.
func (v *Vector[T]) Push(x T) {
	if len(v.data) == cap(v.data) {
		grown := v.alloc.Allocate(max(1, 2*cap(v.data)))
		grown = append(grown, v.data...)
		if v.data != nil {
			v.alloc.Free(v.data)
		}
		v.data = grown
	}
	v.data = append(v.data, x)
}

func (v *Vector[T]) Len() int    { return len(v.data) }
func (v *Vector[T]) At(i int) T  { return v.data[i] }
func (v *Vector[T]) Values() []T { return v.data[:len(v.data):len(v.data)] }

// Release returns the storage to the allocator.
func (v *Vector[T]) Release() {
	if v.data != nil {
		v.alloc.Free(v.data)
		v.data = nil
	}
}

func demoTracking(out io.Writer) {
	alloc := NewTracking[int32](out)
	vec := NewVector(alloc)
	vec.Push(10)
	vec.Push(20)
	fmt.Fprintf(out, "  vector %v, %d bytes in use\n", vec.Values(), alloc.InUse())
	vec.Release()
	fmt.Fprintf(out, "  after release, %d bytes in use\n", alloc.InUse())
}

// slab carves fixed-size buffers out of one backing array and wraps around
// when it runs out.
type slab struct {
	mem []byte
	pos int
}

func newSlab(size int) *slab {
	return &slab{mem: make([]byte, size)}
}

// get returns a buffer of length and capacity size. The full slice
// expression keeps an append on the buffer from writing into its neighbour.
func (s *slab) get(size int) []byte {
	if size > len(s.mem) {
		return make([]byte, size)
	}
	if s.pos+size > len(s.mem) {
		s.pos = 0
	}
	buf := s.mem[s.pos : s.pos+size : s.pos+size]
	s.pos += size
	return buf
}

func fillAndSum(buf []byte) int {
	sum := 0
	for i := range buf {
		buf[i] = byte(i % 256)
		sum += int(buf[i])
	}
	return sum
}

func demoSlab() {
	s := newSlab(4096)
	a, b := s.get(1024), s.get(1024)
	fmt.Printf("  two 1 KiB buffers from one 4 KiB slab: len=%d cap=%d, len=%d cap=%d\n",
		len(a), cap(a), len(b), cap(b))
	fmt.Println("  checksum:", fillAndSum(a))
}
