package history

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAssignsIDAndTimestamp(t *testing.T) {
	store := openTestStore(t)

	record, err := store.Add(context.Background(), Record{
		Path:            "/media/movie.mkv",
		Plugin:          "convert",
		NeedsProcessing: true,
		Args:            []string{"-c:a:0", "ac3"},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected assigned ID")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected assigned timestamp")
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, plugin := range []string{"convert", "extract", "reorder"} {
		if _, err := store.Add(ctx, Record{Path: "/media/movie.mkv", Plugin: plugin}); err != nil {
			t.Fatalf("Add %s: %v", plugin, err)
		}
	}

	records, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Plugin != "reorder" {
		t.Fatalf("expected newest record first, got %q", records[0].Plugin)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestForPathRoundTripsArgs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	args := []string{"-map", "0:s:0", "-c:s:0", "copy"}
	if _, err := store.Add(ctx, Record{Path: "/media/show.mkv", Plugin: "extract", NeedsProcessing: true, Args: args}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add(ctx, Record{Path: "/media/other.mkv", Plugin: "extract"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	records, err := store.ForPath(ctx, "/media/show.mkv")
	if err != nil {
		t.Fatalf("ForPath: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].NeedsProcessing {
		t.Fatal("expected needs_processing to round-trip")
	}
	if !reflect.DeepEqual(records[0].Args, args) {
		t.Fatalf("unexpected args: %v", records[0].Args)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
