package main

import (
	"cmp"
	"container/list"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Set is an ordered-on-read set built on a map with empty-struct values.
type Set[T cmp.Ordered] map[T]struct{}

func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Sorted returns the members in ascending order; map iteration order is
// deliberately randomised, so sorting is the caller's job.
func (s Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s))
}

// listStrings walks a container/list front to back.
func listStrings(l *list.List) []string {
	var out []string
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

func demoContainers() {
	// Slice: the everyday dynamic array.
	vec := []int{1, 2, 3, 4, 5}
	vec = append(vec, 6)
	fmt.Println("  slice:", vec)

	// container/list: doubly linked, O(1) insert at both ends. Rarely the
	// right choice over a slice, but it is there.
	l := list.New()
	l.PushBack("apple")
	l.PushBack("banana")
	l.PushFront("orange")
	fmt.Println("  list: ", strings.Join(listStrings(l), " "))

	// map: hash table. Missing keys read as the zero value; use comma-ok.
	ages := map[string]int{"Alice": 30}
	ages["Bob"] = 25
	fmt.Println("  Bob's age:", ages["Bob"])
	if _, ok := ages["Carol"]; !ok {
		fmt.Println("  Carol not present (ages[\"Carol\"] would read 0)")
	}
	fmt.Println("  sorted keys:", slices.Sorted(maps.Keys(ages)))

	// set: map[T]struct{}; duplicates are ignored.
	unique := Set[int]{}
	for _, n := range []int{10, 5, 10} {
		if !unique.Add(n) {
			fmt.Println("  duplicate ignored:", n)
		}
	}
	fmt.Println("  set:", unique.Sorted())
}
