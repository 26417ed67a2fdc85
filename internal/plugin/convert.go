package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"streamplan/internal/config"
	"streamplan/internal/ffmpeg"
	"streamplan/internal/logging"
	"streamplan/internal/plan"
)

// ConvertRunner re-encodes audio streams that are not in the target codec.
type ConvertRunner struct {
	cfg     *config.Config
	logger  *slog.Logger
	inspect InspectFunc
}

// NewConvert constructs the codec-conversion plugin.
func NewConvert(cfg *config.Config, logger *slog.Logger) *ConvertRunner {
	return &ConvertRunner{
		cfg:     cfg,
		logger:  logging.WithPlugin(logger, NameConvert),
		inspect: inspector(cfg),
	}
}

// Name implements Runner.
func (r *ConvertRunner) Name() string { return NameConvert }

// Evaluate implements Runner.
func (r *ConvertRunner) Evaluate(ctx context.Context, path string) (Decision, error) {
	result, err := r.inspect(ctx, path)
	if err != nil {
		return Decision{}, err
	}

	p, err := plan.Build(result.Streams, plan.NewConvert(r.policy()))
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{NeedsProcessing: p.NeedsProcessing, Plan: p}
	if p.NeedsProcessing {
		decision.Reason = fmt.Sprintf("audio streams require conversion to %s", r.cfg.Convert.TargetCodec)
	} else {
		decision.Reason = fmt.Sprintf("no audio streams require conversion to %s", r.cfg.Convert.TargetCodec)
	}
	r.logger.Debug("evaluated file",
		slog.String("path", path),
		slog.Bool("needs_processing", decision.NeedsProcessing),
		slog.String("reason", decision.Reason))
	return decision, nil
}

// Command implements Runner.
func (r *ConvertRunner) Command(job Job, decision Decision) (*ffmpeg.Command, error) {
	if !decision.NeedsProcessing {
		return nil, ErrNoWork
	}

	cmd := ffmpeg.New(r.cfg.Tools.FFmpeg)
	cmd.Input = job.Input
	if r.cfg.Convert.Advanced {
		cmd.Main = strings.Fields(r.cfg.Convert.MainOptions)
		cmd.Advanced = strings.Fields(r.cfg.Convert.AdvancedOptions)
	} else {
		cmd.WithMaxMuxingQueueSize(r.cfg.Convert.MaxMuxingQueueSize)
	}
	cmd.Mapping = decision.Plan.StreamMapping
	cmd.Encoding = decision.Plan.StreamEncoding
	cmd.Output = job.Output
	return cmd, nil
}

// Finish implements Runner. Conversion leaves no sidecar state behind.
func (r *ConvertRunner) Finish(Job, Decision) error { return nil }

func (r *ConvertRunner) policy() plan.ConvertPolicy {
	return plan.ConvertPolicy{
		TargetCodec:    r.cfg.Convert.TargetCodec,
		Encoder:        r.cfg.Convert.Encoder,
		SelectedOnly:   r.cfg.Convert.SelectionMode == config.SelectionModeSelected,
		SelectedCodecs: r.cfg.Convert.SelectedCodecs,
		Advanced:       r.cfg.Convert.Advanced,
		CustomOptions:  r.cfg.Convert.CustomOptions,
	}
}
