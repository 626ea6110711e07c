package cli

import (
	"fmt"

	"github.com/rcliao/learning-journal/internal/journal"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		Run:   runList,
	}

	cmd.Flags().StringP("query", "q", "", "Match topic, notes or category (case-insensitive)")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().String("type", "", "Filter by session type")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")
	cmd.Flags().Bool("ids-only", false, "Only output ids")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	category, _ := cmd.Flags().GetString("category")
	sessionType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	sessions, err := e.repo.List(cmd.Context(), journal.Filter{
		Query:       query,
		Category:    category,
		SessionType: sessionType,
		Limit:       limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if idsOnly {
		for _, s := range sessions {
			fmt.Fprintln(cmd.OutOrStdout(), s.ID)
		}
		return
	}

	if err := render(cmd.OutOrStdout(), outputFormat(), sessions); err != nil {
		exitErr("render", err)
	}
}
