package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat"
	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/internal/ui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Bring up wireless networking and launch the desktop session",
	Long: `Runs the fixed bring-up sequence: wireless interface up, supplicant,
DHCP lease, then a switch to the session user that starts audio and
replaces the process with the desktop launcher. The first failing step
aborts the whole sequence; completed steps are not rolled back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if ui.IsTerminal() {
			ui.PrintBanner(cruxcat.Version)
		}
		place, _ := cmd.Flags().GetString("place")
		return cli.Start(cmd.Context(), app, cli.StartOptions{Place: place})
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().String("place", "", "Rewrite the supplicant config for this place before starting")
}
