package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), fileName)
	if err := writeLines(path, initialLines); err != nil {
		t.Fatalf("writeLines: %v", err)
	}
	got, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(got) != 3 || !slices.Equal(got, initialLines) {
		t.Errorf("readLines = %q; want %q", got, initialLines)
	}
}

func TestAppendKeepsContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), fileName)
	if err := writeLines(path, initialLines); err != nil {
		t.Fatalf("writeLines: %v", err)
	}
	if err := appendLines(path, appendedLines); err != nil {
		t.Fatalf("appendLines: %v", err)
	}
	got, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	want := slices.Concat(initialLines, appendedLines)
	if len(got) != 5 || !slices.Equal(got, want) {
		t.Errorf("readLines = %q; want %q", got, want)
	}
}

func TestWriteTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), fileName)
	for range 2 {
		if err := writeLines(path, initialLines); err != nil {
			t.Fatalf("writeLines: %v", err)
		}
	}
	got, _ := readLines(path)
	if len(got) != len(initialLines) {
		t.Errorf("after two writes got %d lines; want %d", len(got), len(initialLines))
	}
}

func TestAppendCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.txt")
	if err := appendLines(path, appendedLines); err != nil {
		t.Fatalf("appendLines: %v", err)
	}
	got, _ := readLines(path)
	if !slices.Equal(got, appendedLines) {
		t.Errorf("readLines = %q; want %q", got, appendedLines)
	}
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := readLines(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readLines(missing) = %v; want os.ErrNotExist", err)
	}
}

func TestScanLinesWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	got, err := scanLines(strings.NewReader("a\nb\nc"))
	if err != nil || !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("scanLines = %q, %v", got, err)
	}
}

func TestDemoRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	if err := writeLines(path, initialLines); err != nil {
		t.Fatalf("writeLines: %v", err)
	}
	logger := log.New(io.Discard, "", 0)
	if err := demoRecords(context.Background(), dir, path, logger); err != nil {
		t.Fatalf("demoRecords: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "records", "meow.yaml")); err != nil {
		t.Errorf("record file not written: %v", err)
	}
}
