package cli

import (
	"fmt"

	"github.com/rcliao/learning-journal/internal/journal"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	cmd.Flags().Bool("yes", false, "Confirm deletion (required)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("rm", fmt.Errorf("refusing to delete without --yes"))
	}

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	removed, err := e.repo.Delete(cmd.Context(), args[0])
	if err != nil {
		exitErr("rm", err)
	}
	if !removed {
		exitErr("rm", fmt.Errorf("session %s: %w", args[0], journal.ErrNotFound))
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", args[0])
}
