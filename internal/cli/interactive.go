package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/me/flightsched/internal/intake"
	"github.com/me/flightsched/internal/report"
	"github.com/me/flightsched/pkg/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInteractiveCmd() *cobra.Command {
	var algorithm string
	var save bool
	var prompt bool
	var name string
	var export string

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter flights at the console and print the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := resolveAlgorithm(cmd, algorithm)
			if err != nil {
				return err
			}

			var opts []intake.Option
			if cmd.Flags().Changed("prompt") {
				opts = append(opts, intake.WithPrompts(prompt))
			}
			out := cmd.OutOrStdout()
			flights, err := intake.NewCollector(cmd.InOrStdin(), out, opts...).Collect()
			if errors.Is(err, intake.ErrAborted) {
				return fmt.Errorf("no schedule produced: %w", err)
			}
			if err != nil {
				return err
			}

			if name == "" {
				name = "interactive"
			}
			if export != "" {
				if err := exportBatch(export, name, flights); err != nil {
					return err
				}
				logger.Info("batch exported", "path", export, "flights", len(flights))
			}
			view, err := scheduleAndMaybeSave(cmd, flights, alg, name, model.RunSourceInteractive, save)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			return report.Table(out, view)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Scheduling algorithm (sjf, scan, scan-step; default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the run")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "Show prompts even when input is not a terminal")
	cmd.Flags().StringVar(&name, "name", "", "Run name for --save and --export (default \"interactive\")")
	cmd.Flags().StringVar(&export, "export", "", "Also write the entered flights as a batch file readable by the schedule command")
	return cmd
}

// exportBatch writes flights as a YAML batch that ParseFile reads back.
func exportBatch(path, name string, flights []model.Flight) error {
	batch := model.FlightBatch{Name: name, Flights: make([]model.FlightInput, 0, len(flights))}
	for _, f := range flights {
		batch.Flights = append(batch.Flights, f.Input())
	}
	data, err := yaml.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write batch %s: %w", path, err)
	}
	return nil
}
