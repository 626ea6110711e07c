package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions as CSV",
		Long:  "Export all sessions as CSV to stdout or a file. Use -o auto for learning_sessions_<date>.csv.",
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	if output == "auto" {
		output = exportFileName(time.Now().In(location()))
	}

	e, err := openJournal(cmd)
	if err != nil {
		exitErr("open journal", err)
	}
	defer e.Close()

	text, err := e.repo.ExportCSV(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		exitErr("write export", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q}`+"\n", output)
}

func exportFileName(now time.Time) string {
	return "learning_sessions_" + now.Format("2006-01-02") + ".csv"
}
