package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
)

var placeCmd = &cobra.Command{
	Use:   "place <name>",
	Short: "Rewrite the supplicant config for a named location",
	Long: `Writes /etc/wpa_supplicant/wpa_supplicant.conf (or the configured
path) with the network block of the named place, e.g. 'dacha' or
'home'. The supplicant is not restarted; run 'cruxcat start' after.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return cli.Place(app, args[0])
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
