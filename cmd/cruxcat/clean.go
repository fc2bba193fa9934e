package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete built package archives",
	Long: `Removes *.pkg.tar.gz archives from the configured ports trees and
reports how much disk space was freed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		store := openStore(app)
		if store != nil {
			defer store.Close()
		}
		return cli.Clean(cmd.Context(), app, store)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
