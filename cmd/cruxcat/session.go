package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run the user-context part of the bring-up (audio, then desktop)",
	Long: `Starts the audio server and then replaces this process with the
desktop launcher. Normally invoked by 'cruxcat start' through su; the
outer sequence only ever sees this command's aggregate exit status.`,
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return cli.Session(cmd.Context(), app)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
