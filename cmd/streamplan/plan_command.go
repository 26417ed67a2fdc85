package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"streamplan/internal/plan"
	"streamplan/internal/plugin"
)

type planOutput struct {
	Plugin          string                `json:"plugin"`
	Path            string                `json:"path"`
	NeedsProcessing bool                  `json:"needs_processing"`
	Reason          string                `json:"reason"`
	StreamMapping   []string              `json:"stream_mapping,omitempty"`
	StreamEncoding  []string              `json:"stream_encoding,omitempty"`
	Subtitles       []plan.SubtitleTarget `json:"subtitles,omitempty"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan <plugin> <file>",
		Short: "Evaluate a file against a plugin without running ffmpeg",
		Long: "Evaluate a file against one of the plugins (convert, extract, reorder)\n" +
			"and print the decision together with the stream mapping it would produce.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if jsonOutput {
				return writeJSON(cmd, planOutput{
					Plugin:          runner.Name(),
					Path:            path,
					NeedsProcessing: decision.NeedsProcessing,
					Reason:          decision.Reason,
					StreamMapping:   decision.Plan.StreamMapping,
					StreamEncoding:  decision.Plan.StreamEncoding,
					Subtitles:       decision.Plan.Subtitles,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plugin:           %s\n", runner.Name())
			fmt.Fprintf(out, "File:             %s\n", path)
			fmt.Fprintf(out, "Needs processing: %s\n", yesNo(decision.NeedsProcessing))
			fmt.Fprintf(out, "Reason:           %s\n", decision.Reason)
			if len(decision.Plan.StreamMapping) > 0 {
				fmt.Fprintf(out, "Stream mapping:   %s\n", strings.Join(decision.Plan.StreamMapping, " "))
			}
			if len(decision.Plan.StreamEncoding) > 0 {
				fmt.Fprintf(out, "Stream encoding:  %s\n", strings.Join(decision.Plan.StreamEncoding, " "))
			}
			for _, target := range decision.Plan.Subtitles {
				fmt.Fprintf(out, "Subtitle output:  %s\n", plugin.SubtitlePath(path, target.Tag))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the decision as JSON")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
