package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/me/flightsched/pkg/model"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var name string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			opts := model.DefaultListOptions()
			opts.Limit = limit
			opts.Name = name
			opts.Clamp()

			runs, total, err := st.ListRuns(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs found.")
				return nil
			}

			fmt.Fprintf(out, "%-40s  %-20s  %-9s  %7s  %9s  %s\n", "ID", "NAME", "ALGORITHM", "FLIGHTS", "MEAN WAIT", "CREATED")
			fmt.Fprintf(out, "%-40s  %-20s  %-9s  %7s  %9s  %s\n", "--", "----", "---------", "-------", "---------", "-------")
			for _, run := range runs {
				fmt.Fprintf(out, "%-40s  %-20s  %-9s  %7s  %9s  %s\n",
					run.ID,
					truncate(run.Name, 20),
					run.Algorithm,
					humanize.Comma(int64(run.Summary.Flights)),
					model.FormatClock(int(run.Summary.MeanWaiting)),
					humanize.Time(run.CreatedAt),
				)
			}

			if len(runs) < total {
				fmt.Fprintf(out, "\n(%d of %d shown)\n", len(runs), total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (1-100)")
	cmd.Flags().StringVar(&name, "name", "", "Only runs with this name")
	return cmd
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
