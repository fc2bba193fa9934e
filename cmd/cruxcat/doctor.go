package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/pkg/adapters/netlink"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the machine is ready for startup",
	Long: `Verifies the binaries the startup sequence and the ports maintenance
commands rely on, the configured user and the wireless interface.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return cli.Doctor(app, netlink.Prober{})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
