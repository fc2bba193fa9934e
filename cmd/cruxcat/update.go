package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update outdated ports",
	Long: `Runs 'prt-get diff' and updates each outdated port: refreshes its
md5 checksums, downloads sources, builds with pkgmk and installs with
pkgadd. A failing port is reported and skipped; the run continues.`,
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

		limit, _ := cmd.Flags().GetInt("number")
		skipMD5, _ := cmd.Flags().GetBool("skip-md5")
		skip, _ := cmd.Flags().GetStringSlice("skip")
		only, _ := cmd.Flags().GetStringSlice("list")

		return cli.Update(cmd.Context(), app, store, cli.UpdateOptions{
			Limit:   limit,
			SkipMD5: skipMD5,
			Skip:    skip,
			Only:    only,
		})
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().IntP("number", "n", 0, "Number of ports to update (0 = all)")
	updateCmd.Flags().Bool("skip-md5", false, "Skip md5 checksum regeneration")
	updateCmd.Flags().StringSlice("skip", nil, "Ports to skip")
	updateCmd.Flags().StringSlice("list", nil, "Only update these ports")
}
