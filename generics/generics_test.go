package main

import "testing"

func TestAdd(t *testing.T) {
	t.Parallel()

	if got := Add(5, 10); got != 15 {
		t.Errorf("Add(5, 10) = %d", got)
	}
	if got := Add(1.5, 2.25); got != 3.75 {
		t.Errorf("Add(1.5, 2.25) = %g", got)
	}
	if got := Add("Hello", " World"); got != "Hello World" {
		t.Errorf("Add(strings) = %q", got)
	}
	if got := Add(Score(7), Score(8)); got != Score(15) {
		t.Errorf("Add(Score) = %d", got)
	}
}

func TestPrintPair(t *testing.T) {
	t.Parallel()

	if got := PrintPair(10, "apples"); got != "(10, apples)" {
		t.Errorf("PrintPair = %q", got)
	}
	if got := PrintPair(3.5, true); got != "(3.5, true)" {
		t.Errorf("PrintPair = %q", got)
	}
}

func TestBox(t *testing.T) {
	t.Parallel()

	if got := NewBox(123).Content(); got != 123 {
		t.Errorf("Box[int] content = %d", got)
	}
	b := MapBox(NewBox("gopher"), func(s string) int { return len(s) })
	if b.Content() != 6 {
		t.Errorf("MapBox content = %d; want 6", b.Content())
	}
	if got := (Pair[string, int]{"a", 1}).String(); got != "a=1" {
		t.Errorf("Pair.String = %q", got)
	}
}

func TestRenderSpecializations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got, want string
	}{
		{Render(100), "generic: 100"},
		{Render("x"), `specialized for string: "x"`},
		{Render(Temperature(21.5)), "specialized via Renderer: 21.5°C"},
		{NewContainer(5).Describe(), "generic container for int"},
		{NewContainer('X').Describe(), "specialized container for rune: X"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q; want %q", tt.got, tt.want)
		}
	}
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	if got := Max(3, 9, 4); got != 9 {
		t.Errorf("Max = %d", got)
	}
	if got := Max("pear", "apple"); got != "pear" {
		t.Errorf("Max(strings) = %q", got)
	}
	if got := Max(7); got != 7 {
		t.Errorf("Max(single) = %d", got)
	}
	if got := Sum[Score](1, 2, 3); got != 6 {
		t.Errorf("Sum = %d", got)
	}
	if got := Sum[float64](); got != 0 {
		t.Errorf("Sum() = %g; want 0", got)
	}
	if got := JoinStrings([]Temperature{20, 21.5}, ", "); got != "20.0°C, 21.5°C" {
		t.Errorf("JoinStrings = %q", got)
	}
	if Zero[string]() != "" || Zero[*int]() != nil {
		t.Error("Zero mismatch")
	}
}
