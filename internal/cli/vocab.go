package cli

import (
	"github.com/rcliao/learning-journal/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(vocabCmd("category", "categories", (*store.RecordStore).Categories))
	RootCmd.AddCommand(vocabCmd("language", "languages", (*store.RecordStore).Languages))
}

// vocabCmd builds the list/add pair for one vocabulary.
func vocabCmd(name, plural string, pick func(*store.RecordStore) *store.Vocabulary) *cobra.Command {
	parent := &cobra.Command{
		Use:   name,
		Short: "Manage " + plural,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all " + plural,
		Run: func(cmd *cobra.Command, args []string) {
			e, err := openJournal(cmd)
			if err != nil {
				exitErr("open journal", err)
			}
			defer e.Close()

			names, err := pick(e.records).List(cmd.Context())
			if err != nil {
				exitErr("list "+plural, err)
			}
			if err := render(cmd.OutOrStdout(), outputFormat(), names); err != nil {
				exitErr("render", err)
			}
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a " + name + " (no-op if it already exists)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			e, err := openJournal(cmd)
			if err != nil {
				exitErr("open journal", err)
			}
			defer e.Close()

			vocab := pick(e.records)
			if _, err := vocab.Add(cmd.Context(), args[0]); err != nil {
				exitErr("add "+name, err)
			}
			names, err := vocab.List(cmd.Context())
			if err != nil {
				exitErr("list "+plural, err)
			}
			if err := render(cmd.OutOrStdout(), outputFormat(), names); err != nil {
				exitErr("render", err)
			}
		},
	}

	parent.AddCommand(listCmd, addCmd)
	return parent
}
