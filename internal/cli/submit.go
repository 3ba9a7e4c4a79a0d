package cli

import (
	"errors"
	"fmt"

	"github.com/me/flightsched/internal/parser"
	"github.com/me/flightsched/internal/report"
	"github.com/me/flightsched/pkg/model"
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var algorithm string
	var format string
	var save bool

	cmd := &cobra.Command{
		Use:   "submit <batch.yaml>",
		Short: "Send a batch file to a flightsched server",
		Long:  "Parse a flight batch locally and schedule it on the server given by --server.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			batch, err := parser.New(logger).ParseFile(args[0])
			if err != nil {
				return err
			}
			logger.Info("submitting batch", "name", batch.Name, "flights", len(batch.Flights), "server", client.BaseURL)

			view, err := client.SubmitBatch(cmd.Context(), batch, algorithm, save)
			if err != nil {
				var apiErr *model.APIError
				if errors.As(err, &apiErr) {
					printFieldErrors(cmd, apiErr)
				}
				return fmt.Errorf("submit batch: %w", err)
			}
			if view.RunID != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", view.RunID)
			}
			return report.Render(cmd.OutOrStdout(), f, view)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Scheduling algorithm (default: server's)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the run on the server")
	return cmd
}
