package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a session",
		Long:  "Change fields of a session. Only the flags given are applied; id, number and creation time never change.",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	addSessionFlags(cmd.Flags())
	cmd.Flags().Bool("clear-effort", false, "Remove the mental effort score")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	patch := patchFromFlags(cmd.Flags())
	if patch.Empty() {
		exitErr("edit", fmt.Errorf("nothing to change (pass at least one field flag)"))
	}

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	s, err := e.repo.Update(cmd.Context(), args[0], patch)
	if err != nil {
		exitErr("edit", err)
	}

	if err := render(cmd.OutOrStdout(), outputFormat(), s); err != nil {
		exitErr("render", err)
	}
}
