package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		name    string
		age     int
		wantErr error
	}{
		{"Ada\n36\n", "Ada", 36, nil},
		{"  Grace  \n 85 \n", "Grace", 85, nil},
		{"Linus\nabc\n", "Linus", 0, ErrInvalidAge},
		{"Ken\n-1\n", "Ken", 0, ErrInvalidAge},
		{"Rob\n", "Rob", 0, io.EOF},
		{"", "stranger", 0, io.EOF},
	}
	for _, tt := range tests {
		name, age, err := readProfile(strings.NewReader(tt.in))
		if name != tt.name || age != tt.age || !errors.Is(err, tt.wantErr) {
			t.Errorf("readProfile(%q) = %q, %d, %v; want %q, %d, %v",
				tt.in, name, age, err, tt.name, tt.age, tt.wantErr)
		}
	}
}

func TestDemoInputOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	demoInput(strings.NewReader("Ada\n36\n"), &out)
	if got := out.String(); !strings.Contains(got, "Hello, Ada!") || !strings.Contains(got, "36 years old") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	s := Flag1 | Flag3
	if s != 5 {
		t.Fatalf("Flag1|Flag3 = %d; want 5", s)
	}
	if !s.Has(Flag1) || s.Has(Flag2) || !s.Has(Flag3) {
		t.Errorf("Has mismatch for %03b", s)
	}
	if got := s.Set(Flag2).Clear(Flag1); got != Flag2|Flag3 {
		t.Errorf("Set/Clear = %03b; want %03b", got, Flag2|Flag3)
	}
	if got := bitIndex(Flag3); got != 2 {
		t.Errorf("bitIndex(Flag3) = %d; want 2", got)
	}
}
