package sidecar

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileYieldsEmptyMarker(t *testing.T) {
	marker, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if marker.Processed("extract", "movie.mkv") {
		t.Fatal("missing marker should report nothing processed")
	}
}

func TestRecordSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	marker, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	marker.Record("extract", "Show S01E01.mkv", []string{"eng", "jpn"})
	if err := marker.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.Processed("extract", "Show S01E01.mkv") {
		t.Fatal("expected recorded file to be processed")
	}
	got := reloaded.Languages("extract", "Show S01E01.mkv")
	if !reflect.DeepEqual(got, []string{"eng", "jpn"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
	if reloaded.Processed("extract", "Show S01E02.mkv") {
		t.Fatal("unrecorded file should not be processed")
	}
	if reloaded.Processed("convert", "Show S01E01.mkv") {
		t.Fatal("other plugin sections should stay independent")
	}
}

func TestRecordReplacesPreviousEntry(t *testing.T) {
	marker, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	marker.Record("extract", "movie.mkv", []string{"eng"})
	marker.Record("extract", "movie.mkv", []string{"fra"})
	if got := marker.Languages("extract", "movie.mkv"); !reflect.DeepEqual(got, []string{"fra"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
}

func TestLoadCorruptFileStillUsable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	marker, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if marker == nil {
		t.Fatal("expected usable marker despite parse error")
	}
	if marker.Processed("extract", "movie.mkv") {
		t.Fatal("corrupt marker should report nothing processed")
	}
}

func TestEmptyLanguageListNotProcessed(t *testing.T) {
	marker, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	marker.Record("extract", "movie.mkv", nil)
	if marker.Processed("extract", "movie.mkv") {
		t.Fatal("empty record should not count as processed")
	}
}
