package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"streamplan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var forPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded plugin runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled in the configuration")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			var records []history.Record
			if forPath != "" {
				target, err := filepath.Abs(forPath)
				if err != nil {
					return fmt.Errorf("resolve path: %w", err)
				}
				records, err = store.ForPath(cmd.Context(), target)
				if err != nil {
					return err
				}
			} else {
				records, err = store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					record.CreatedAt.Local().Format("2006-01-02 15:04"),
					record.Plugin,
					filepath.Base(record.Path),
					yesNo(record.NeedsProcessing),
					strconv.Itoa(len(record.Args)),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"When", "Plugin", "File", "Processed", "Args"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().StringVar(&forPath, "path", "", "Only show runs for this file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit records as JSON")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

// newHistoryShowCommand prints the stored ffmpeg arguments for one run.
func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the full ffmpeg arguments of one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), 0)
			if err != nil {
				return err
			}
			for _, record := range records {
				if record.ID != args[0] {
					continue
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:    %s\n", record.ID)
				fmt.Fprintf(out, "When:   %s\n", record.CreatedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Plugin: %s\n", record.Plugin)
				fmt.Fprintf(out, "File:   %s\n", record.Path)
				if len(record.Args) > 0 {
					fmt.Fprintf(out, "Args:   %s\n", strings.Join(record.Args, " "))
				}
				return nil
			}
			return fmt.Errorf("no run with id %s", args[0])
		},
	}
}
