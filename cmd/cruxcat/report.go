package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/pkg/adapters/sqlite"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show recorded update runs",
	Long: `Renders the latest recorded update run in the terminal. With --list
the recent runs are shown as a table instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		store, err := sqlite.Open(app.Config.DBPath())
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}
		defer store.Close()

		list, _ := cmd.Flags().GetBool("list")
		limit, _ := cmd.Flags().GetInt("limit")
		return cli.Report(cmd.Context(), app, store, cli.ReportOptions{List: list, Limit: limit})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Bool("list", false, "List recent runs instead of rendering the latest")
	reportCmd.Flags().Int("limit", 20, "Number of runs to list")
}
