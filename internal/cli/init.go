package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the journal database and seed default categories and languages",
		Run:   runInit,
	}

	RootCmd.AddCommand(cmd)
}

func runInit(cmd *cobra.Command, args []string) {
	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"db":%q}`+"\n", getDBPath())
}
