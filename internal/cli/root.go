// Package cli implements the journal CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rcliao/learning-journal/internal/app"
	"github.com/rcliao/learning-journal/internal/config"
	"github.com/rcliao/learning-journal/internal/journal"
	"github.com/rcliao/learning-journal/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string

	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Track learning sessions",
	Long:  "A personal learning journal. Log study sessions, browse them, see streaks, move them in and out as CSV. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c, err := config.Load()
		if err != nil {
			exitErr("load config", err)
		}
		cfg = c
		logger = app.NewLogger(cfg.Log)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $JOURNAL_DB or ~/.learning-journal/journal.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json, yaml or text (default: text on a terminal, json otherwise)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path
	}
	return config.DefaultDBPath()
}

func location() *time.Location {
	if cfg == nil {
		return time.Local
	}
	loc, err := cfg.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

// env bundles the opened storage layers for one command run.
type env struct {
	kv      *store.SQLiteKV
	records *store.RecordStore
	repo    *journal.Repository
}

func (e *env) Close() error { return e.kv.Close() }

func openJournal(cmd *cobra.Command) (*env, error) {
	kv, err := store.NewSQLiteKV(getDBPath())
	if err != nil {
		return nil, err
	}

	records := store.NewRecordStore(kv, logger)
	if err := records.EnsureInitialized(cmd.Context()); err != nil {
		kv.Close()
		return nil, err
	}

	repo := journal.NewRepository(logger, records, journal.WithLocation(location()))
	return &env{kv: kv, records: records, repo: repo}, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
