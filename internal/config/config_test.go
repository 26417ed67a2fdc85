package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"streamplan/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Convert.TargetCodec != "ac3" {
		t.Fatalf("unexpected target codec: %q", cfg.Convert.TargetCodec)
	}
	if cfg.Convert.SelectionMode != config.SelectionModeAll {
		t.Fatalf("unexpected selection mode: %q", cfg.Convert.SelectionMode)
	}
	if cfg.Convert.MaxMuxingQueueSize != 2048 {
		t.Fatalf("unexpected muxing queue size: %d", cfg.Convert.MaxMuxingQueueSize)
	}
	if !cfg.Extract.IncludeTitleInFileName {
		t.Fatal("expected title inclusion enabled by default")
	}
	if cfg.Reorder.SearchString != "eng" {
		t.Fatalf("unexpected search string: %q", cfg.Reorder.SearchString)
	}
	if cfg.Radarr.Enabled || cfg.Sonarr.Enabled {
		t.Fatal("expected lookup services disabled by default")
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "streamplan", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
}

func TestLoadParsesAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[convert]
target_codec = "AC3"
selection_mode = "Selected"
selected_codecs = ["DTS", " TrueHD "]

[reorder]
search_string = "  jpn  "

[radarr]
enabled = true
url = "http://radarr.local:7878/"
api_key = "secret"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Convert.TargetCodec != "ac3" {
		t.Fatalf("expected lowercased target codec, got %q", cfg.Convert.TargetCodec)
	}
	if cfg.Convert.SelectionMode != config.SelectionModeSelected {
		t.Fatalf("expected normalized selection mode, got %q", cfg.Convert.SelectionMode)
	}
	if cfg.Convert.SelectedCodecs[0] != "dts" || cfg.Convert.SelectedCodecs[1] != "truehd" {
		t.Fatalf("expected normalized codec list, got %v", cfg.Convert.SelectedCodecs)
	}
	if cfg.Reorder.SearchString != "jpn" {
		t.Fatalf("expected trimmed search string, got %q", cfg.Reorder.SearchString)
	}
	if cfg.Radarr.URL != "http://radarr.local:7878" {
		t.Fatalf("expected trailing slash stripped, got %q", cfg.Radarr.URL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		fragment string
	}{
		{
			name:     "bad selection mode",
			mutate:   func(cfg *config.Config) { cfg.Convert.SelectionMode = "some" },
			fragment: "selection_mode",
		},
		{
			name: "selected mode without codecs",
			mutate: func(cfg *config.Config) {
				cfg.Convert.SelectionMode = config.SelectionModeSelected
				cfg.Convert.SelectedCodecs = nil
			},
			fragment: "selected_codecs",
		},
		{
			name:     "muxing queue out of range",
			mutate:   func(cfg *config.Config) { cfg.Convert.MaxMuxingQueueSize = 100 },
			fragment: "max_muxing_queue_size",
		},
		{
			name: "radarr url without scheme",
			mutate: func(cfg *config.Config) {
				cfg.Radarr.Enabled = true
				cfg.Radarr.URL = "radarr.local"
				cfg.Radarr.APIKey = "key"
			},
			fragment: "radarr.url",
		},
		{
			name: "sonarr missing api key",
			mutate: func(cfg *config.Config) {
				cfg.Sonarr.Enabled = true
			},
			fragment: "sonarr.api_key",
		},
		{
			name:     "bad log format",
			mutate:   func(cfg *config.Config) { cfg.Logging.Format = "xml" },
			fragment: "logging.format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.fragment) {
				t.Fatalf("expected %q in error %q", tt.fragment, err)
			}
		})
	}
}

func TestSampleConfigIsNotEmpty(t *testing.T) {
	if !strings.Contains(config.Sample(), "[convert]") {
		t.Fatal("expected sample config to describe the convert section")
	}
}
