package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	langinfo "streamplan/internal/language"
	"streamplan/internal/probe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Inspect a media file's streams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			result, err := probe.Inspect(cmd.Context(), cfg.Tools.FFprobe, path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %d streams)\n",
				filepath.Base(path), result.Format.FormatName, len(result.Streams))
			fmt.Fprintln(out, streamTable(out, result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit raw probe data as JSON")
	return cmd
}

func streamTable(out io.Writer, result probe.Result) string {
	titleCaser := cases.Title(language.Und)
	rows := make([][]string, 0, len(result.Streams))
	for _, stream := range result.Streams {
		channels := ""
		if stream.Channels > 0 {
			channels = strconv.Itoa(stream.Channels)
		}
		rows = append(rows, []string{
			strconv.Itoa(stream.Index),
			titleCaser.String(stream.Type()),
			stream.Codec(),
			channels,
			languageCell(stream.Language()),
			stream.Title(),
		})
	}
	return renderTable(out,
		[]string{"#", "Type", "Codec", "Ch", "Language", "Title"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft})
}

// languageCell formats a language tag for display, appending the
// human-readable name when the tag is recognized.
func languageCell(tag string) string {
	if tag == "" {
		return ""
	}
	if name := langinfo.DisplayName(tag); !strings.EqualFold(name, tag) {
		return fmt.Sprintf("%s (%s)", tag, name)
	}
	return tag
}
