package plugin

import (
	"context"
	"errors"

	"streamplan/internal/config"
	"streamplan/internal/ffmpeg"
	"streamplan/internal/plan"
	"streamplan/internal/probe"
)

// Plugin names, used for logging, history records, and sidecar sections.
const (
	NameConvert = "convert"
	NameExtract = "extract"
	NameReorder = "reorder"
)

// ErrNoWork reports that Command was asked to build an invocation for a
// file whose evaluation produced nothing to do.
var ErrNoWork = errors.New("file needs no processing")

// Job describes one worker invocation. Input is the file the command reads,
// Output the primary file it writes, and Source the original library path
// used for sidecar markers and subtitle file naming. An empty Source
// defaults to Input.
type Job struct {
	Input  string
	Output string
	Source string
}

func (j Job) source() string {
	if j.Source != "" {
		return j.Source
	}
	return j.Input
}

// Decision is the outcome of evaluating one file against one plugin.
type Decision struct {
	NeedsProcessing bool
	Reason          string
	Plan            plan.Plan
}

// Runner is the lifecycle every plugin implements.
type Runner interface {
	// Name returns the plugin's short name.
	Name() string
	// Evaluate probes the file and decides whether it needs processing.
	Evaluate(ctx context.Context, path string) (Decision, error)
	// Command assembles the ffmpeg invocation for a positive decision.
	Command(job Job, decision Decision) (*ffmpeg.Command, error)
	// Finish records any post-run state after the command succeeded.
	Finish(job Job, decision Decision) error
}

// InspectFunc probes a media file. Runners take it as a seam so tests can
// substitute canned probe results for the ffprobe binary.
type InspectFunc func(ctx context.Context, path string) (probe.Result, error)

func inspector(cfg *config.Config) InspectFunc {
	return func(ctx context.Context, path string) (probe.Result, error) {
		return probe.Inspect(ctx, cfg.Tools.FFprobe, path)
	}
}
