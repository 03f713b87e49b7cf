package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const fileName = "meow.txt"

var (
	initialLines = []string{
		"Hello from the Go program!",
		"This is the first line.",
		"This is the second line.",
	}
	appendedLines = []string{
		"This is an appended line.",
		"Another appended line.",
	}
)

// writeLines creates path, or truncates it, and writes one line per entry.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open for writing: %w", err)
	}
	return writeAndClose(f, lines)
}

// appendLines adds lines to the end of path, creating it if missing.
func appendLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open for appending: %w", err)
	}
	return writeAndClose(f, lines)
}

// writeAndClose buffers the writes and reports a Close error, which is
// where a full disk often shows up.
func writeAndClose(f *os.File, lines []string) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", f.Name(), cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write %s: %w", f.Name(), err)
		}
	}
	return w.Flush()
}

// readLines returns every line of path without trailing newlines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open for reading: %w", err)
	}
	defer f.Close()
	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("scan: %w", err)
	}
	return lines, nil
}

func demoWrite(path string) error {
	fmt.Println("  writing to file:", path)
	if err := writeLines(path, initialLines); err != nil {
		return err
	}
	fmt.Println("  finished writing.")
	return nil
}

func demoRead(path string) error {
	fmt.Println("  reading from file:", path)
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	for i, line := range lines {
		fmt.Printf("  %d │ %s\n", i+1, line)
	}
	fmt.Printf("  finished reading (%d lines).\n", len(lines))
	return nil
}

func demoAppend(path string) error {
	fmt.Println("  appending to file:", path)
	if err := appendLines(path, appendedLines); err != nil {
		return err
	}
	fmt.Println("  finished appending.")
	return nil
}
