package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"streamplan/internal/config"
	"streamplan/internal/ffmpeg"
	"streamplan/internal/history"
	"streamplan/internal/plugin"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "run <plugin> <file>",
		Short: "Evaluate a file and run the resulting ffmpeg command",
		Long: "Evaluate a file against a plugin (convert, extract, reorder) and, when\n" +
			"processing is needed, run ffmpeg into a staged file that replaces the\n" +
			"original on success. Use --output to write elsewhere instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runner, err := ctx.runner(args[0])
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			decision, err := runner.Evaluate(cmd.Context(), path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !decision.NeedsProcessing {
				recordHistory(cfg, logger, runner.Name(), path, decision, nil)
				fmt.Fprintf(out, "Nothing to do: %s\n", decision.Reason)
				return nil
			}

			final := path
			if outputPath != "" {
				final, err = filepath.Abs(outputPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}
			staged := stagedPath(final)

			job := plugin.Job{Input: path, Output: staged, Source: path}
			invocation, err := runner.Command(job, decision)
			if err != nil {
				return err
			}
			ffmpegArgs, err := invocation.Args()
			if err != nil {
				return err
			}

			logger.Info("running ffmpeg",
				slog.String("plugin", runner.Name()),
				slog.String("input", path),
				slog.String("output", final))
			if err := ffmpeg.Run(cmd.Context(), invocation); err != nil {
				_ = os.Remove(staged)
				return err
			}
			if err := os.Rename(staged, final); err != nil {
				return fmt.Errorf("move output into place: %w", err)
			}
			if err := runner.Finish(job, decision); err != nil {
				return err
			}

			recordHistory(cfg, logger, runner.Name(), path, decision, ffmpegArgs)
			fmt.Fprintf(out, "Wrote %s\n", final)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result here instead of replacing the input")
	return cmd
}

// stagedPath keeps the final extension so ffmpeg infers the right muxer.
func stagedPath(final string) string {
	return filepath.Join(filepath.Dir(final), "."+uuid.NewString()+filepath.Ext(final))
}

// recordHistory appends a run record when the history store is enabled.
// History failures are logged, never fatal: the media work already happened.
func recordHistory(cfg *config.Config, logger *slog.Logger, name, path string, decision plugin.Decision, args []string) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("history store unavailable", slog.Any("error", err))
		return
	}
	defer store.Close()

	if _, err := store.Add(context.Background(), history.Record{
		Path:            path,
		Plugin:          name,
		NeedsProcessing: decision.NeedsProcessing,
		Args:            args,
	}); err != nil {
		logger.Warn("failed to record run history", slog.Any("error", err))
	}
}
