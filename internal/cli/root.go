package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/me/flightsched/internal/config"
	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDB        string
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    config.Config
	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking FLIGHTSCHED_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("FLIGHTSCHED_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the flightsched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flightsched",
		Short: "flightsched: shortest-job-first runway scheduling",
		Long: "flightsched orders flights on a single runway, always serving the shortest\n" +
			"arrived flight next, and reports turnaround and waiting times.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			flags := cmd.Flags()
			if flags.Changed("db") {
				cfg.DBPath = flagDB
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}

			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			client = NewClient(flagServer, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "Run archive path (default ~/.flightsched/flightsched.db, or FLIGHTSCHED_DB env)")
	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "flightsched server URL (or FLIGHTSCHED_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newScheduleCmd(),
		newInteractiveCmd(),
		newSubmitCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newDeleteCmd(),
	)

	return root
}

// openStore opens and migrates the local run archive. The caller closes it.
func openStore(cmd *cobra.Command) (store.Store, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, fmt.Errorf("open run archive: %w", err)
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate run archive: %w", err)
	}
	return st, nil
}
