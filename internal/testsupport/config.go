// Package testsupport provides shared helpers for package tests: canned
// configurations rooted in per-test temp directories and probe stream
// builders for exercising classifiers without ffprobe.
package testsupport

import (
	"path/filepath"
	"testing"

	"streamplan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp history path per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSelectedCodecs switches the convert plugin into selected mode with
// the given allow-list.
func WithSelectedCodecs(codecs ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Convert.SelectionMode = config.SelectionModeSelected
		cfg.Convert.SelectedCodecs = codecs
	}
}

// WithExtractLanguages sets the raw subtitle language filter.
func WithExtractLanguages(languages string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extract.Languages = languages
	}
}

// WithSearchString sets the reorder plugin's fallback language.
func WithSearchString(search string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Reorder.SearchString = search
	}
}

// WithAdvancedOptions switches the convert plugin into advanced mode with
// the given option strings.
func WithAdvancedOptions(main, advanced, custom string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Convert.Advanced = true
		cfg.Convert.MainOptions = main
		cfg.Convert.AdvancedOptions = advanced
		cfg.Convert.CustomOptions = custom
	}
}
