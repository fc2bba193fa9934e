package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List outdated ports",
	Long: `Shows the ports 'prt-get diff' reports as outdated. With --available
the port's source files are listed and the ones matching the available
version are highlighted. With --install the outdated ports are updated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		available, _ := cmd.Flags().GetBool("available")
		install, _ := cmd.Flags().GetBool("install")
		return cli.Check(cmd.Context(), app, cli.CheckOptions{
			Available: available,
			Install:   install,
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("available", false, "Show source files for each outdated port")
	checkCmd.Flags().Bool("install", false, "Update the outdated ports")
}
