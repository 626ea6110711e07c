package cli

import (
	"time"

	"github.com/rcliao/learning-journal/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a learning session",
		Long:  "Log a learning session. Date defaults to today; duration is derived from --start/--end when not given.",
		Run:   runAdd,
	}

	addSessionFlags(cmd.Flags())
	cmd.MarkFlagRequired("topic")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	d := draftFromFlags(cmd.Flags())
	if d.Date == "" {
		d.Date = time.Now().In(location()).Format(model.DateLayout)
	}

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	s, err := e.repo.Create(cmd.Context(), d)
	if err != nil {
		exitErr("add", err)
	}

	if err := render(cmd.OutOrStdout(), outputFormat(), s); err != nil {
		exitErr("render", err)
	}
}
