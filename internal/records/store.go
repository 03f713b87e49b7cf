// Package records persists small named records as YAML files, one file per
// record, in a single directory.
package records

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Record is a named list of text lines plus bookkeeping fields.
type Record struct {
	Name    string    `yaml:"name"`
	Lines   []string  `yaml:"lines"`
	Updated time.Time `yaml:"updated"`
}

// ErrInvalidName is returned for names that would escape the store directory.
var ErrInvalidName = errors.New("invalid record name")

// Store is a directory of YAML records.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates dir if needed. A nil logger means log.Default().
func NewStore(dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir reports the directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Save writes r to <dir>/<name>.yaml, replacing any previous version.
// A zero Updated is stamped with the current time.
func (s *Store) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn, err := s.path(r.Name)
	if err != nil {
		return err
	}
	if r.Updated.IsZero() {
		r.Updated = time.Now().UTC()
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	s.logger.Printf("[records] saved %q (%d lines)", r.Name, len(r.Lines))
	return nil
}

// Load reads the record called name. A missing record yields an error
// wrapping os.ErrNotExist.
func (s *Store) Load(ctx context.Context, name string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	fn, err := s.path(name)
	if err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("record %q: %w", name, os.ErrNotExist)
		}
		return Record{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("yaml unmarshal %s: %w", fn, err)
	}
	r.Name = name
	return r, nil
}

func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+".yaml"), nil
}
