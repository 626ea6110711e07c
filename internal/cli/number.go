package cli

import (
	"fmt"

	"github.com/rcliao/learning-journal/internal/journal"
	"github.com/spf13/cobra"
)

func init() {
	nextCmd := &cobra.Command{
		Use:   "next-number",
		Short: "Print the number the next session will get",
		Run:   runNextNumber,
	}

	durationCmd := &cobra.Command{
		Use:   "duration <date> <start> <end>",
		Short: "Compute minutes between two clock times (wraps past midnight)",
		Args:  cobra.ExactArgs(3),
		Run:   runDuration,
	}

	RootCmd.AddCommand(nextCmd)
	RootCmd.AddCommand(durationCmd)
}

func runNextNumber(cmd *cobra.Command, args []string) {
	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	n, err := e.repo.NextNumber(cmd.Context())
	if err != nil {
		exitErr("next-number", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"next":%d}`+"\n", n)
}

func runDuration(cmd *cobra.Command, args []string) {
	minutes := journal.DurationFromTimes(args[0], args[1], args[2])
	fmt.Fprintf(cmd.OutOrStdout(), `{"minutes":%d}`+"\n", minutes)
}
