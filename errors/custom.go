package main

import (
	"errors"
	"fmt"
)

// EmptyDataError is returned when a collection that must hold data is
// empty. Custom types carry fields callers can inspect with errors.As.
type EmptyDataError struct {
	Source string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("%s: data cannot be empty", e.Source)
}

// processData sums data, rejecting an empty slice.
func processData(source string, data []int) (int, error) {
	if len(data) == 0 {
		return 0, &EmptyDataError{Source: source}
	}
	sum := 0
	for _, v := range data {
		sum += v
	}
	return sum, nil
}

func demoCustom() {
	if _, err := processData("sensor", nil); err != nil {
		var empty *EmptyDataError
		if errors.As(err, &empty) {
			fmt.Printf("  caught custom error from %q: %v\n", empty.Source, err)
		}
	}
	if sum, err := processData("sensor", []int{1, 2, 3}); err == nil {
		fmt.Println("  data processed successfully, sum =", sum)
	}
}

// OpError follows the os.PathError / net.OpError shape: operation,
// subject and cause.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *OpError) Unwrap() error { return e.Err }

func loadReadings(path string) ([]int, error) {
	// Pretend the file exists but is empty.
	sum, err := processData(path, nil)
	if err != nil {
		return nil, &OpError{Op: "load", Path: path, Err: err}
	}
	return []int{sum}, nil
}

func demoWrapping() {
	_, err := loadReadings("/var/data/readings.csv")
	wrapped := fmt.Errorf("report: %w", err)
	fmt.Println("  error:", wrapped)

	var op *OpError
	if errors.As(wrapped, &op) {
		fmt.Printf("  op=%q path=%q\n", op.Op, op.Path)
	}
	var empty *EmptyDataError
	fmt.Println("  As(*EmptyDataError) through two layers:", errors.As(wrapped, &empty))

	fmt.Printf("  As through %%v: %v\n", errors.As(flatten(wrapped), &empty))
}

// flatten keeps err's message but not its chain, which is what wrapping
// with %v instead of %w does.
func flatten(err error) error {
	return fmt.Errorf("report: %v", err)
}

// validateAll checks every value and returns all failures at once.
func validateAll(values ...int) error {
	var errs []error
	for _, v := range values {
		if err := catchAll(func() error { return checkValue(v) }); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func demoJoin() {
	err := validateAll(10, -1, 101, magicValue)
	fmt.Println("  joined:")
	fmt.Println(err)
	fmt.Println("  Is(ErrInvalidArgument):", errors.Is(err, ErrInvalidArgument))
	fmt.Println("  Is(ErrOutOfRange):     ", errors.Is(err, ErrOutOfRange))
	fmt.Println("  all valid →", validateAll(1, 2, 3))
}
