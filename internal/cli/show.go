package cli

import (
	"fmt"

	"github.com/me/flightsched/internal/report"
	"github.com/me/flightsched/pkg/model"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}
			if run == nil {
				return model.NewNotFoundError("run", args[0])
			}

			out := cmd.OutOrStdout()
			if f == report.FormatTable {
				fmt.Fprintf(out, "Run %s (%s, %s, %s)\n\n", run.ID, run.Name, run.Algorithm, run.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			}
			return report.Render(out, f, run.View())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")
	return cmd
}
