package resolve

import (
	"context"
	"errors"
	"testing"
)

type fakeLookup struct {
	name string
	err  error
}

func (f fakeLookup) OriginalLanguage(ctx context.Context, term string) (string, error) {
	return f.name, f.err
}

func TestSearchCodePrefersMovieSource(t *testing.T) {
	resolver := New(fakeLookup{name: "French"}, fakeLookup{name: "Japanese"}, "eng", nil)
	if code := resolver.SearchCode(context.Background(), "movie.mkv"); code != "fra" {
		t.Fatalf("expected fra, got %q", code)
	}
}

func TestSearchCodeFallsThroughToSeriesSource(t *testing.T) {
	resolver := New(fakeLookup{err: errors.New("connection refused")}, fakeLookup{name: "Japanese"}, "eng", nil)
	if code := resolver.SearchCode(context.Background(), "show.mkv"); code != "jpn" {
		t.Fatalf("expected jpn, got %q", code)
	}
}

func TestSearchCodeFallsBackToConfiguredString(t *testing.T) {
	// Movie source disabled, series source enabled but empty-handed.
	resolver := New(nil, fakeLookup{}, "spa", nil)
	if code := resolver.SearchCode(context.Background(), "file.mkv"); code != "spa" {
		t.Fatalf("expected spa, got %q", code)
	}
}

func TestSearchCodeSwallowsAllFailures(t *testing.T) {
	resolver := New(fakeLookup{err: errors.New("timeout")}, fakeLookup{err: errors.New("401")}, "", nil)
	if code := resolver.SearchCode(context.Background(), "file.mkv"); code != "" {
		t.Fatalf("expected empty fallback, got %q", code)
	}
}

func TestSearchCodeIgnoresUnknownLanguageNames(t *testing.T) {
	resolver := New(fakeLookup{name: "Klingon"}, nil, "eng", nil)
	if code := resolver.SearchCode(context.Background(), "file.mkv"); code != "eng" {
		t.Fatalf("expected eng fallback for unknown name, got %q", code)
	}
}
