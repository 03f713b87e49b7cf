package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcodamonte/language-tour/internal/records"
)

// demoRecords stores the text file's lines as a YAML record next to it and
// reads the record back.
func demoRecords(ctx context.Context, dir, textPath string, logger *log.Logger) error {
	store, err := records.NewStore(filepath.Join(dir, "records"), logger)
	if err != nil {
		return err
	}

	lines, err := readLines(textPath)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(textPath), filepath.Ext(textPath))

	if err := store.Save(ctx, records.Record{Name: name, Lines: lines}); err != nil {
		return err
	}
	got, err := store.Load(ctx, name)
	if err != nil {
		return err
	}
	fmt.Printf("  loaded %q from %s: %d lines, updated %s\n",
		got.Name, store.Dir(), len(got.Lines), got.Updated.Format("15:04:05"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name+".yaml"))
	if err != nil {
		return err
	}
	fmt.Println("  on disk:")
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		fmt.Println("    " + line)
	}

	if _, err := store.Load(ctx, "missing"); err != nil {
		fmt.Println("  missing record →", err)
	}
	return nil
}
