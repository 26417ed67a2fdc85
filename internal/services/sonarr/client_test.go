package sonarr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamplan/internal/services/sonarr"
)

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := sonarr.New("", "key"); err == nil {
		t.Fatal("expected error when base url missing")
	}
	if _, err := sonarr.New("http://sonarr.local", ""); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestOriginalLanguageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/series/lookup" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "key" {
			t.Fatal("expected X-Api-Key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"Show","originalLanguage":{"name":"Japanese"}}]`))
	}))
	t.Cleanup(server.Close)

	client, err := sonarr.New(server.URL, "key")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	name, err := client.OriginalLanguage(context.Background(), "/media/show.mkv")
	if err != nil {
		t.Fatalf("OriginalLanguage returned error: %v", err)
	}
	if name != "Japanese" {
		t.Fatalf("unexpected language %q", name)
	}
}

func TestOriginalLanguageMissingLanguageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"Show"}]`))
	}))
	t.Cleanup(server.Close)

	client, err := sonarr.New(server.URL, "key")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	name, err := client.OriginalLanguage(context.Background(), "show")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if name != "" {
		t.Fatalf("expected empty language, got %q", name)
	}
}
