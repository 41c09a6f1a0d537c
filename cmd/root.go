package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/mathiz-eval/internal/evaluation"
	"github.com/abhisek/mathiz-eval/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mathiz-eval",
	Short:         "Answer evaluation engine for math lessons",
	Long:          "mathiz-eval classifies learner answers against lesson rules and reads math expressions aloud.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides MATHIZ_EVAL_DB env var)")
	rootCmd.PersistentFlags().Bool("no-record", false, "Do not record evaluations to the event database")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHIZ_EVAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds a text logger on stderr at the --log-level level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", name)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

// openService builds the evaluation service with logging and, unless
// --no-record is set, an event store. The returned cleanup closes the store.
func openService(cmd *cobra.Command, opts ...evaluation.Option) (*evaluation.Service, *slog.Logger, func(), error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := evaluation.DefaultConfig()
	if noRecord, _ := cmd.Flags().GetBool("no-record"); noRecord {
		cfg.RecordEvents = false
	}
	opts = append(opts, evaluation.WithLogger(logger))

	cleanup := func() {}
	if cfg.RecordEvents {
		st, err := openStore(cmd)
		if err != nil {
			// Evaluation still works without the event log.
			logger.Warn("event recording disabled", "error", err)
			cfg.RecordEvents = false
		} else {
			opts = append(opts, evaluation.WithEventRepo(st.EventRepo()))
			cleanup = func() { st.Close() }
		}
	}

	return evaluation.NewService(cfg, opts...), logger, cleanup, nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
