package main

import (
	"container/heap"
	"fmt"
	"slices"
	"strings"
)

// sortedCopy returns an ascending copy, leaving the input untouched.
func sortedCopy(nums []int) []int {
	out := slices.Clone(nums)
	slices.Sort(out)
	return out
}

// doubleEach doubles every element in place and returns the slice.
func doubleEach(nums []int) []int {
	for i := range nums {
		nums[i] *= 2
	}
	return nums
}

type person struct {
	Name string
	Age  int
}

func demoAlgorithms() {
	data := []int{5, 2, 8, 1, 9, 4}
	sorted := sortedCopy(data)
	fmt.Println("  sorted:", sorted)

	if i, found := slices.BinarySearch(sorted, 8); found {
		fmt.Println("  found 8 at index", i)
	}
	fmt.Println("  slices.Index(data, 8):", slices.Index(data, 8))
	fmt.Println("  doubled:", doubleEach(sorted))
	fmt.Println("  min/max:", slices.Min(data), slices.Max(data))

	// SortFunc with a multi-key comparison.
	people := []person{{"Bob", 25}, {"Alice", 30}, {"Carol", 25}}
	slices.SortStableFunc(people, func(a, b person) int {
		if c := a.Age - b.Age; c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	fmt.Println("  by age, then name:", people)
}

// intHeap is a min-heap implementing heap.Interface.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// drainHeap pushes nums into a min-heap and pops them back in order.
func drainHeap(nums []int) []int {
	h := &intHeap{}
	for _, n := range nums {
		heap.Push(h, n)
	}
	out := make([]int, 0, len(nums))
	for h.Len() > 0 {
		out = append(out, heap.Pop(h).(int))
	}
	return out
}

func demoHeap() {
	fmt.Println("  heap order:", drainHeap([]int{7, 3, 9, 1, 4}))
}
