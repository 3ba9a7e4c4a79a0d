package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/me/flightsched/internal/parser"
	"github.com/me/flightsched/internal/report"
	"github.com/me/flightsched/internal/scheduler"
	"github.com/me/flightsched/pkg/model"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	var algorithm string
	var format string
	var save bool
	var name string

	cmd := &cobra.Command{
		Use:   "schedule <batch.yaml>",
		Short: "Schedule a batch file and print the report",
		Long: "Parse a YAML or JSON flight batch, order it shortest-job-first and print\n" +
			"the schedule. Use --save to archive the run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := resolveAlgorithm(cmd, algorithm)
			if err != nil {
				return err
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			batch, err := parser.New(logger).ParseFile(args[0])
			if err != nil {
				return err
			}
			flights, apiErr := parser.NewValidator(logger).Validate(batch)
			if apiErr != nil {
				printFieldErrors(cmd, apiErr)
				return apiErr
			}
			if name != "" {
				batch.Name = name
			}

			view, err := scheduleAndMaybeSave(cmd, flights, alg, batch.Name, model.RunSourceFile, save)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), f, view)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Scheduling algorithm (sjf, scan, scan-step; default from config)")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the run")
	cmd.Flags().StringVar(&name, "name", "", "Run name shown in reports and history (default: the batch's name field, else the file path)")
	return cmd
}

// resolveAlgorithm prefers the --algorithm flag and falls back to the config.
func resolveAlgorithm(cmd *cobra.Command, flagValue string) (scheduler.Algorithm, error) {
	if cmd.Flags().Changed("algorithm") {
		return scheduler.ParseAlgorithm(flagValue)
	}
	return scheduler.ParseAlgorithm(cfg.Algorithm)
}

// scheduleAndMaybeSave computes the schedule and, when save is set, archives
// it and returns the archived view.
func scheduleAndMaybeSave(cmd *cobra.Command, flights []model.Flight, alg scheduler.Algorithm, name, source string, save bool) (model.ScheduleView, error) {
	sched, err := scheduler.New(alg, logger)
	if err != nil {
		return model.ScheduleView{}, err
	}
	started := time.Now()
	result := sched.Schedule(flights)
	logger.Debug("schedule computed", "algorithm", alg, "flights", result.Len(), "elapsed", time.Since(started).String())

	if !save {
		view := result.View()
		view.Algorithm = alg.String()
		return view, nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return model.ScheduleView{}, err
	}
	defer st.Close()

	if name == "" {
		name = "unnamed-batch"
	}
	run := model.NewRun("run_"+uuid.New().String(), name, alg.String(), result, time.Now().UTC())
	run.Source = source
	if err := st.CreateRun(cmd.Context(), run); err != nil {
		return model.ScheduleView{}, fmt.Errorf("archive run: %w", err)
	}
	logger.Info("run archived", "id", run.ID, "name", run.Name)
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", run.ID)
	return run.View(), nil
}

// printFieldErrors lists validation problems one per line on stderr.
func printFieldErrors(cmd *cobra.Command, apiErr *model.APIError) {
	for _, d := range apiErr.Details {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", d)
	}
}
