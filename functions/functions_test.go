package main

import (
	"testing"
)

func TestFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want uint64
	}{
		{-1, 1}, {0, 1}, {1, 1}, {5, 120}, {10, 3628800}, {20, 2432902008176640000},
	}
	for _, tt := range tests {
		if got := factorial(tt.n); got != tt.want {
			t.Errorf("factorial(%d) = %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestBigFactorialMatchesFactorial(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 20; n++ {
		if got := bigFactorial(int64(n)).Uint64(); got != factorial(n) {
			t.Errorf("bigFactorial(%d) = %d; want %d", n, got, factorial(n))
		}
	}
}

func TestParameters(t *testing.T) {
	t.Parallel()

	v := 10
	setByValue(v)
	if v != 10 {
		t.Errorf("setByValue changed caller's value to %d", v)
	}
	setByPointer(&v)
	if v != 99 {
		t.Errorf("setByPointer left %d; want 99", v)
	}

	s := []int{1, 2, 3}
	appendByValue(s)
	if len(s) != 3 || s[0] != -1 {
		t.Errorf("appendByValue: s = %v; want [-1 2 3]", s)
	}
}

func TestDivmod(t *testing.T) {
	t.Parallel()

	if q, r := divmod(17, 5); q != 3 || r != 2 {
		t.Errorf("divmod(17, 5) = %d, %d; want 3, 2", q, r)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := map[string]any{
		"Printing an int: 10":      10,
		"Printing a float64: 3.14": 3.14,
		"Printing a string: hi":    "hi",
		"Printing a []int: [1 2]":  []int{1, 2},
	}
	for want, v := range tests {
		if got := describe(v); got != want {
			t.Errorf("describe(%v) = %q; want %q", v, got, want)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if got := showMessage(); got != defaultMessage {
		t.Errorf("showMessage() = %q", got)
	}
	if got := showMessage("a", "b"); got != "a b" {
		t.Errorf("showMessage(a, b) = %q", got)
	}
	if got := newBanner("go").String(); got != "**go**" {
		t.Errorf("default banner = %q; want **go**", got)
	}
	if got := newBanner("go", withWidth(6), withFill('=')).String(); got != "==go==" {
		t.Errorf("custom banner = %q; want ==go==", got)
	}
	if got := newBanner("long", withWidth(1)).String(); got != "long" {
		t.Errorf("narrow banner = %q; want long", got)
	}
}

func TestClosures(t *testing.T) {
	t.Parallel()

	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := countIf(nums, func(n int) bool { return n%2 == 0 }); got != 5 {
		t.Errorf("countIf(even) = %d; want 5", got)
	}
	if got := multiplier(10)(5); got != 50 {
		t.Errorf("multiplier(10)(5) = %d; want 50", got)
	}
	next := counter()
	next()
	next()
	if got := next(); got != 3 {
		t.Errorf("third counter call = %d; want 3", got)
	}
	sum := 0
	forEach(nums, func(n int) { sum += n })
	if sum != 55 {
		t.Errorf("forEach sum = %d; want 55", sum)
	}
	if square(7) != 49 || square(1.5) != 2.25 {
		t.Error("square mismatch")
	}
}
