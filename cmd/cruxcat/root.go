package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "cruxcat",
	Short: "cruxcat brings a CRUX machine onto the network and keeps its ports fresh",
	Long: `cruxcat is the CAT Soft toolkit for a CRUX laptop: it brings up
wireless networking and the desktop session, rewrites the supplicant
config per location, and updates, checks and cleans the ports tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps errors onto the fixed exit
// contract: step failures print their diagnostic line on stdout,
// everything exits 1.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var stepErr *domain.StepError
		if errors.As(err, &stepErr) {
			fmt.Println(cli.FailureLine(stepErr))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the cruxcat config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
}
