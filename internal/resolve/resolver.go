package resolve

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"streamplan/internal/config"
	"streamplan/internal/language"
	"streamplan/internal/logging"
	"streamplan/internal/services/radarr"
	"streamplan/internal/services/sonarr"
)

// Lookup is the capability a language source provides: map a file path or
// search term to the media item's original-language name.
type Lookup interface {
	OriginalLanguage(ctx context.Context, term string) (string, error)
}

// Resolver resolves the search code from lookup services with a configured
// fallback. A nil service is treated as disabled.
type Resolver struct {
	movies   Lookup
	series   Lookup
	fallback string
	logger   *slog.Logger
}

// New constructs a resolver. Either lookup may be nil.
func New(movies, series Lookup, fallback string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{movies: movies, series: series, fallback: fallback, logger: logger}
}

// NewFromConfig wires the configured lookup services into a resolver.
// Client construction errors surface immediately; they indicate incomplete
// credentials rather than a transient lookup failure.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Resolver, error) {
	var movies, series Lookup
	if cfg.Radarr.Enabled {
		client, err := radarr.New(cfg.Radarr.URL, cfg.Radarr.APIKey,
			radarr.WithTimeout(time.Duration(cfg.Radarr.TimeoutSeconds)*time.Second))
		if err != nil {
			return nil, err
		}
		movies = client
	}
	if cfg.Sonarr.Enabled {
		client, err := sonarr.New(cfg.Sonarr.URL, cfg.Sonarr.APIKey,
			sonarr.WithTimeout(time.Duration(cfg.Sonarr.TimeoutSeconds)*time.Second))
		if err != nil {
			return nil, err
		}
		series = client
	}
	return New(movies, series, cfg.Reorder.SearchString, logger), nil
}

// SearchCode returns the language code to reorder by: the movie source
// first, then the series source, then the configured fallback. Lookup
// failures and unknown language names count as "no result". The lookup term
// is the file's base name without its extension.
func (r *Resolver) SearchCode(ctx context.Context, path string) string {
	term := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if code := r.codeFrom(ctx, r.movies, term, "radarr"); code != "" {
		return code
	}
	if code := r.codeFrom(ctx, r.series, term, "sonarr"); code != "" {
		return code
	}
	return r.fallback
}

func (r *Resolver) codeFrom(ctx context.Context, source Lookup, term, name string) string {
	if source == nil {
		return ""
	}
	languageName, err := source.OriginalLanguage(ctx, term)
	if err != nil {
		r.logger.Debug("original language lookup failed",
			slog.String("source", name),
			slog.String("term", term),
			slog.Any("error", err))
		return ""
	}
	if languageName == "" {
		return ""
	}
	code := language.CodeForName(languageName)
	if code == "" {
		r.logger.Debug("language name not recognized",
			slog.String("source", name),
			slog.String("language", languageName))
	}
	return code
}
