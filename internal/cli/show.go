package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	s, err := e.repo.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("show", err)
	}

	if err := render(cmd.OutOrStdout(), outputFormat(), s); err != nil {
		exitErr("render", err)
	}
}
