package main

import (
	"container/list"
	"slices"
	"testing"
)

func TestSortedCopy(t *testing.T) {
	t.Parallel()

	in := []int{5, 2, 8, 1, 9}
	got := sortedCopy(in)
	if want := []int{1, 2, 5, 8, 9}; !slices.Equal(got, want) {
		t.Errorf("sortedCopy = %v; want %v", got, want)
	}
	if !slices.IsSorted(got) {
		t.Error("result is not ascending")
	}
	if in[0] != 5 {
		t.Error("sortedCopy modified its input")
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := Set[int]{}
	if !s.Add(10) || !s.Add(5) || s.Add(10) {
		t.Error("Add reported wrong novelty")
	}
	if got := s.Sorted(); !slices.Equal(got, []int{5, 10}) {
		t.Errorf("Sorted = %v; want [5 10]", got)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	l := list.New()
	l.PushBack("apple")
	l.PushBack("banana")
	l.PushFront("orange")
	if got := listStrings(l); !slices.Equal(got, []string{"orange", "apple", "banana"}) {
		t.Errorf("listStrings = %v", got)
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Take(Evens([]int{1, 2, 3, 4, 5, 6, 7, 8}), 3))
	if want := []int{2, 4, 6}; !slices.Equal(got, want) {
		t.Errorf("Take(Evens) = %v; want %v", got, want)
	}
	if got := slices.Collect(Take(Evens([]int{2, 4}), 0)); len(got) != 0 {
		t.Errorf("Take(0) = %v; want empty", got)
	}

	nums := []int{10, 20}
	addInPlace(nums, 5)
	if !slices.Equal(nums, []int{15, 25}) {
		t.Errorf("addInPlace = %v", nums)
	}
}

func TestAlgorithms(t *testing.T) {
	t.Parallel()

	if got := doubleEach([]int{1, 2, 4}); !slices.Equal(got, []int{2, 4, 8}) {
		t.Errorf("doubleEach = %v", got)
	}
	if got := drainHeap([]int{7, 3, 9, 1, 4}); !slices.Equal(got, []int{1, 3, 4, 7, 9}) {
		t.Errorf("drainHeap = %v", got)
	}
}
