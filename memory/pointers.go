package main

import "fmt"

func demoPointers() {
	v := 20
	ptr := &v

	fmt.Println("  value of v:          ", v)
	fmt.Printf("  address of v (&v):    %p\n", &v)
	fmt.Printf("  value of ptr:         %p\n", ptr)
	fmt.Println("  value at ptr (*ptr): ", *ptr)

	*ptr = 30
	fmt.Println("  v after *ptr = 30:   ", v)

	// The zero value of a pointer is nil; dereferencing it panics rather
	// than reading garbage.
	var nilPtr *int
	func() {
		defer func() { fmt.Println("  nil dereference recovered:", recover()) }()
		_ = *nilPtr
	}()
}

// newCounter returns a pointer to a local variable. That is safe in Go:
// escape analysis moves v to the heap because it outlives the call.
func newCounter(start int) *int {
	v := start
	return &v
}

// sumFixed keeps its array on the stack: nothing takes its address
// beyond this frame.
func sumFixed() int {
	arr := [5]int{0, 10, 20, 30, 40}
	total := 0
	for _, x := range arr {
		total += x
	}
	return total
}

func demoAllocation() {
	// new(T) allocates a zeroed T and returns *T.
	p := new(int)
	*p = 101
	fmt.Println("  new(int) then *p = 101:", *p)

	// make initialises slices, maps and channels.
	arr := make([]int, 5)
	for i := range arr {
		arr[i] = i * 10
	}
	fmt.Println("  make([]int, 5):", arr)

	c := newCounter(7)
	*c++
	fmt.Println("  escaped counter:", *c)
	fmt.Println("  stack array sum:", sumFixed())

	// There is no delete: memory is reclaimed by the garbage collector
	// once nothing references it. Setting p = nil just drops a reference.
	p = nil
	_ = p
}
