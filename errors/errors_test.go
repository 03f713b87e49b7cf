package main

import (
	"errors"
	"runtime"
	"testing"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	if got, err := divide(10, 4); err != nil || got != 2.5 {
		t.Errorf("divide(10, 4) = %g, %v; want 2.5, nil", got, err)
	}
	if _, err := divide(10, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("divide(10, 0) err = %v; want ErrDivisionByZero", err)
	}
}

func TestCheckValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value int
		want  error
	}{
		{0, nil},
		{50, nil},
		{100, nil},
		{-5, ErrInvalidArgument},
		{101, ErrOutOfRange},
	}
	for _, tt := range tests {
		err := checkValue(tt.value)
		if tt.want == nil && err != nil {
			t.Errorf("checkValue(%d) = %v; want nil", tt.value, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("checkValue(%d) = %v; want %v", tt.value, err, tt.want)
		}
	}
}

func TestCatchAllRecoversNonErrorPanic(t *testing.T) {
	t.Parallel()

	err := catchAll(func() error { return checkValue(magicValue) })
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("catchAll = %v; want *PanicError", err)
	}
	if v, ok := pe.Value.(int); !ok || v != magicValue {
		t.Errorf("panic value = %#v; want %d", pe.Value, magicValue)
	}
	if pe.Unwrap() != nil {
		t.Error("a non-error panic value should not unwrap")
	}
}

func TestCatchAllRuntimeError(t *testing.T) {
	t.Parallel()

	err := catchAll(func() error {
		var s []int
		_ = s[3]
		return nil
	})
	var re runtime.Error
	if !errors.As(err, &re) {
		t.Errorf("catchAll(index panic) = %v; want a runtime.Error in the chain", err)
	}
}

func TestProcessDataEmpty(t *testing.T) {
	t.Parallel()

	_, err := processData("src", []int{})
	var empty *EmptyDataError
	if !errors.As(err, &empty) || empty.Source != "src" {
		t.Fatalf("processData(empty) = %v; want *EmptyDataError{src}", err)
	}
	if sum, err := processData("src", []int{1, 2, 3}); err != nil || sum != 6 {
		t.Errorf("processData = %d, %v; want 6, nil", sum, err)
	}
}

func TestWrappingChain(t *testing.T) {
	t.Parallel()

	_, err := loadReadings("x.csv")
	var op *OpError
	if !errors.As(err, &op) || op.Path != "x.csv" {
		t.Fatalf("loadReadings err = %v", err)
	}
	var empty *EmptyDataError
	if !errors.As(err, &empty) {
		t.Error("EmptyDataError not reachable through OpError")
	}
	if got := err.Error(); got != "load x.csv: x.csv: data cannot be empty" {
		t.Errorf("message = %q", got)
	}
}

func TestFlattenBreaksChain(t *testing.T) {
	t.Parallel()

	_, err := loadReadings("x.csv")
	flat := flatten(err)

	var empty *EmptyDataError
	if errors.As(flat, &empty) {
		t.Error("EmptyDataError still reachable after flatten")
	}
	if errors.Unwrap(flat) != nil {
		t.Error("flatten kept an Unwrap chain")
	}
	if got, want := flat.Error(), "report: "+err.Error(); got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	if err := validateAll(1, 2, 3); err != nil {
		t.Errorf("validateAll(valid) = %v; want nil", err)
	}

	err := validateAll(-1, 101, magicValue)
	if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, ErrOutOfRange) {
		t.Errorf("joined error missing a sentinel: %v", err)
	}
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Errorf("joined error missing the recovered panic: %v", err)
	}
}
