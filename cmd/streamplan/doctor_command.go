package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"streamplan/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external binaries are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Default(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, state})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Dependency", "Command", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft}))
			if missing > 0 {
				return fmt.Errorf("%d required dependencies are missing", missing)
			}
			return nil
		},
	}
}
