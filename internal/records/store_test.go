package records_test

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/marcodamonte/language-tour/internal/records"
)

func newStore(t *testing.T) *records.Store {
	t.Helper()
	s, err := records.NewStore(t.TempDir(), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := records.Record{Name: "meow", Lines: []string{"first", "second"}, Updated: stamp}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "meow")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != want.Name || !slices.Equal(got.Lines, want.Lines) || !got.Updated.Equal(stamp) {
		t.Errorf("Load = %+v; want %+v", got, want)
	}
}

func TestSaveStampsUpdated(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, records.Record{Name: "n"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Updated.IsZero() {
		t.Error("Updated was not stamped")
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	_, err := s.Load(context.Background(), "nope")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v; want os.ErrNotExist", err)
	}
}

func TestInvalidName(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		err := s.Save(context.Background(), records.Record{Name: name})
		if !errors.Is(err, records.ErrInvalidName) {
			t.Errorf("Save(%q) = %v; want ErrInvalidName", name, err)
		}
	}
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Save(ctx, records.Record{Name: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Save(cancelled) = %v; want context.Canceled", err)
	}
}
