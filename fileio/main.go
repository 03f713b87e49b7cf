package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Each demo covers one step of working with a plain text file, then the
// same lines are stored as a structured YAML record.
//
// Run:
//
//	go run .
//	go run . -dir ./out
func main() {
	dir := flag.String("dir", filepath.Join(os.TempDir(), "language-tour"), "directory for demo files")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		logger.Fatalf("[fileio] %v", err)
	}
	path := filepath.Join(*dir, fileName)

	section("Write — create or truncate a file")
	if err := demoWrite(path); err != nil {
		logger.Printf("[fileio] %v", err)
	}

	section("Read — line by line with bufio.Scanner")
	if err := demoRead(path); err != nil {
		logger.Printf("[fileio] %v", err)
	}

	section("Append — O_APPEND keeps existing content")
	if err := demoAppend(path); err != nil {
		logger.Printf("[fileio] %v", err)
	}

	section("Read again — the appended lines are there")
	if err := demoRead(path); err != nil {
		logger.Printf("[fileio] %v", err)
	}

	section("Structured records — YAML save and load")
	if err := demoRecords(context.Background(), *dir, path, logger); err != nil {
		logger.Printf("[fileio] %v", err)
	}
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
