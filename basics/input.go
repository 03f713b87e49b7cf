package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidAge is returned when the age line is not a non-negative integer.
var ErrInvalidAge = errors.New("invalid input for age")

// readProfile reads a name line and an age line from r. A missing name
// defaults to "stranger"; a missing age is reported as io.EOF.
func readProfile(r io.Reader) (name string, age int, err error) {
	sc := bufio.NewScanner(r)

	name = "stranger"
	if sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			name = s
		}
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return name, 0, err
		}
		return name, 0, io.EOF
	}

	age, convErr := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if convErr != nil || age < 0 {
		return name, 0, fmt.Errorf("%w: %q", ErrInvalidAge, sc.Text())
	}
	return name, age, nil
}

func demoInput(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "  Enter your name, then your age: ")
	name, age, err := readProfile(in)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Hello, %s!\n", name)

	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(out, "  (no age given)")
	case errors.Is(err, ErrInvalidAge):
		fmt.Fprintln(out, "  Error:", err)
	case err != nil:
		fmt.Fprintln(out, "  read error:", err)
	default:
		fmt.Fprintf(out, "  You are %d years old.\n", age)
	}
}
