package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"streamplan/internal/config"
	"streamplan/internal/ffmpeg"
	"streamplan/internal/logging"
	"streamplan/internal/plan"
)

// SearchCoder resolves the language code a file's audio streams should be
// reordered by.
type SearchCoder interface {
	SearchCode(ctx context.Context, path string) string
}

// ReorderRunner moves audio streams matching the resolved language ahead of
// the rest, marking the first match as the default stream.
type ReorderRunner struct {
	cfg      *config.Config
	logger   *slog.Logger
	inspect  InspectFunc
	resolver SearchCoder
}

// NewReorder constructs the stream-reorder plugin. A nil resolver falls
// back to the configured search string.
func NewReorder(cfg *config.Config, resolver SearchCoder, logger *slog.Logger) *ReorderRunner {
	return &ReorderRunner{
		cfg:      cfg,
		logger:   logging.WithPlugin(logger, NameReorder),
		inspect:  inspector(cfg),
		resolver: resolver,
	}
}

// Name implements Runner.
func (r *ReorderRunner) Name() string { return NameReorder }

// Evaluate implements Runner.
func (r *ReorderRunner) Evaluate(ctx context.Context, path string) (Decision, error) {
	search := r.cfg.Reorder.SearchString
	if r.resolver != nil {
		search = r.resolver.SearchCode(ctx, path)
	}

	result, err := r.inspect(ctx, path)
	if err != nil {
		return Decision{}, err
	}

	p, err := plan.Build(result.Streams, plan.NewReorder(plan.ReorderPolicy{SearchString: search}))
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{NeedsProcessing: p.NeedsProcessing, Plan: p}
	if p.NeedsProcessing {
		decision.Reason = fmt.Sprintf("audio streams matching %q are not first", search)
	} else {
		decision.Reason = fmt.Sprintf("audio streams already ordered for %q", search)
	}
	r.logger.Debug("evaluated file",
		slog.String("path", path),
		slog.String("search", search),
		slog.Bool("needs_processing", decision.NeedsProcessing))
	return decision, nil
}

// Command implements Runner. The reorder plan is a pure remux: the mapping
// tokens carry the copy codec and disposition flags, so no per-stream
// encoding section is needed.
func (r *ReorderRunner) Command(job Job, decision Decision) (*ffmpeg.Command, error) {
	if !decision.NeedsProcessing {
		return nil, ErrNoWork
	}

	cmd := ffmpeg.New(r.cfg.Tools.FFmpeg)
	cmd.Input = job.Input
	cmd.Mapping = decision.Plan.StreamMapping
	cmd.Output = job.Output
	return cmd, nil
}

// Finish implements Runner. Reordering leaves no sidecar state behind.
func (r *ReorderRunner) Finish(Job, Decision) error { return nil }
