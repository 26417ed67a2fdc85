package plugin

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"streamplan/internal/config"
	"streamplan/internal/ffmpeg"
	"streamplan/internal/language"
	"streamplan/internal/logging"
	"streamplan/internal/plan"
	"streamplan/internal/sidecar"
)

// ExtractRunner copies ASS/SSA subtitle streams into standalone files next
// to the source. A sidecar marker in the source directory records completed
// extractions so repeat scans skip the file.
type ExtractRunner struct {
	cfg     *config.Config
	logger  *slog.Logger
	inspect InspectFunc
	marker  func(dir string) (*sidecar.Marker, error)
}

// NewExtract constructs the subtitle-extraction plugin.
func NewExtract(cfg *config.Config, logger *slog.Logger) *ExtractRunner {
	return &ExtractRunner{
		cfg:     cfg,
		logger:  logging.WithPlugin(logger, NameExtract),
		inspect: inspector(cfg),
		marker:  sidecar.Load,
	}
}

// Name implements Runner.
func (r *ExtractRunner) Name() string { return NameExtract }

// Evaluate implements Runner. A file with a non-empty sidecar record is
// skipped before probing; an unreadable marker counts as unprocessed.
func (r *ExtractRunner) Evaluate(ctx context.Context, path string) (Decision, error) {
	marker, err := r.marker(filepath.Dir(path))
	if err != nil {
		r.logger.Debug("sidecar marker unreadable, treating file as unprocessed",
			slog.String("path", path),
			slog.Any("error", err))
	}
	if marker != nil && marker.Processed(NameExtract, filepath.Base(path)) {
		return Decision{Reason: "subtitles already extracted"}, nil
	}

	result, err := r.inspect(ctx, path)
	if err != nil {
		return Decision{}, err
	}

	p, err := plan.Build(result.Streams, plan.NewExtract(plan.ExtractPolicy{
		Languages:    r.cfg.Extract.Languages,
		IncludeTitle: r.cfg.Extract.IncludeTitleInFileName,
	}))
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{NeedsProcessing: p.NeedsProcessing, Plan: p}
	if p.NeedsProcessing {
		decision.Reason = "file has ASS/SSA subtitle streams to extract"
	} else {
		decision.Reason = "file has no matching ASS/SSA subtitle streams"
	}
	r.logger.Debug("evaluated file",
		slog.String("path", path),
		slog.Bool("needs_processing", decision.NeedsProcessing),
		slog.Int("subtitle_targets", len(p.Subtitles)))
	return decision, nil
}

// Command implements Runner. The primary output remuxes every stream; each
// subtitle target is appended as its own extraction output named after the
// source file.
func (r *ExtractRunner) Command(job Job, decision Decision) (*ffmpeg.Command, error) {
	if !decision.NeedsProcessing {
		return nil, ErrNoWork
	}

	cmd := ffmpeg.New(r.cfg.Tools.FFmpeg)
	cmd.Input = job.Input
	cmd.Mapping = decision.Plan.StreamMapping
	cmd.Encoding = decision.Plan.StreamEncoding
	cmd.Output = job.Output
	for _, target := range decision.Plan.Subtitles {
		mapping := append(append([]string(nil), target.Mapping...), "-c", "copy")
		cmd.AppendOutput(mapping, SubtitlePath(job.source(), target.Tag))
	}
	return cmd, nil
}

// Finish implements Runner: it records the extracted languages in the
// source directory's sidecar marker.
func (r *ExtractRunner) Finish(job Job, decision Decision) error {
	if !decision.NeedsProcessing {
		return nil
	}

	source := job.source()
	marker, err := sidecar.Load(filepath.Dir(source))
	if err != nil {
		r.logger.Warn("sidecar marker unreadable, rewriting it",
			slog.String("path", source),
			slog.Any("error", err))
	}

	languages := make([]string, 0, len(decision.Plan.Subtitles))
	for _, target := range decision.Plan.Subtitles {
		languages = append(languages, language.ToISO3(target.Language))
	}
	marker.Record(NameExtract, filepath.Base(source), languages)
	return marker.Save()
}

// SubtitlePath derives the extraction output path for a subtitle tag: the
// source file's stem plus the tag, with an .ass extension, in the source's
// directory.
func SubtitlePath(source, tag string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(filepath.Dir(source), stem+tag+".ass")
}
