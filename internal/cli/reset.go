package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every session and restore default categories and languages",
		Run:   runReset,
	}

	cmd.Flags().Bool("yes", false, "Confirm the reset (required)")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("reset", fmt.Errorf("refusing to erase the journal without --yes"))
	}

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	if err := e.records.Reset(cmd.Context()); err != nil {
		exitErr("reset", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
