package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cruxcat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cruxcat version %s\n", strings.TrimSpace(cruxcat.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
