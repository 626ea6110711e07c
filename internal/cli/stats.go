package cli

import (
	"github.com/rcliao/learning-journal/internal/analytics"
	"github.com/rcliao/learning-journal/internal/store"
	"github.com/spf13/cobra"
)

// statsOutput pairs the journal aggregates with storage details.
type statsOutput struct {
	analytics.Summary `yaml:",inline"`
	Storage           *store.Stats `json:"storage,omitempty" yaml:"storage,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, category breakdown and the current streak",
		Run:   runStats,
	}

	cmd.Flags().Bool("storage", false, "Include database file and slot sizes")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	withStorage, _ := cmd.Flags().GetBool("storage")

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	summary, err := e.repo.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	out := statsOutput{Summary: summary}
	if withStorage {
		out.Storage, err = e.kv.Stats(cmd.Context(), getDBPath())
		if err != nil {
			exitErr("storage stats", err)
		}
	}

	if err := render(cmd.OutOrStdout(), outputFormat(), out); err != nil {
		exitErr("render", err)
	}
}
