package main

import (
	"errors"
	"fmt"
)

// Sentinel errors: fixed, comparable conditions checked with errors.Is.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

func divide(numerator, denominator int) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(numerator) / float64(denominator), nil
}

func demoBasic() {
	for _, d := range []int{4, 0} {
		result, err := divide(10, d)
		if err != nil {
			fmt.Println("  error:", err)
			continue
		}
		fmt.Printf("  10 / %d = %g\n", d, result)
	}
}

// magicValue triggers the "throw something that is not an error" branch.
const magicValue = 42

// checkValue validates 0 ≤ value ≤ 100. The magic value panics with a bare
// int, the equivalent of throwing a non-exception type.
func checkValue(value int) error {
	switch {
	case value < 0:
		return fmt.Errorf("value %d: cannot be negative: %w", value, ErrInvalidArgument)
	case value > 100:
		return fmt.Errorf("value %d: cannot be greater than 100: %w", value, ErrOutOfRange)
	case value == magicValue:
		panic(magicValue)
	}
	return nil
}

func demoKinds() {
	for _, v := range []int{50, -5, 150} {
		err := checkValue(v)
		switch {
		case err == nil:
			fmt.Println("  value is valid:", v)
		case errors.Is(err, ErrInvalidArgument):
			fmt.Println("  invalid argument:", err)
		case errors.Is(err, ErrOutOfRange):
			fmt.Println("  out of range:", err)
		}
	}
}

// PanicError carries a recovered panic value of any type.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("recovered panic: %v (%T)", e.Value, e.Value) }

// Unwrap exposes the value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// catchAll runs fn and converts any panic into a *PanicError, the
// equivalent of catch (...). Use it only at a boundary: a goroutine
// root, an RPC handler, a plugin call.
func catchAll(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}

func demoCatchAll() {
	for _, v := range []int{magicValue, 7} {
		err := catchAll(func() error { return checkValue(v) })

		var pe *PanicError
		switch {
		case errors.As(err, &pe):
			fmt.Println("  caught an unknown panic:", pe)
		case err != nil:
			fmt.Println("  caught error:", err)
		default:
			fmt.Println("  no error for", v)
		}
	}

	// Runtime panics are runtime.Error values and surface the same way.
	err := catchAll(func() error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})
	fmt.Println(" ", err)
}
