package main

import (
	"github.com/spf13/cobra"

	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/internal/logging"
	"github.com/glebone/cruxcat/pkg/adapters/process"
	"github.com/glebone/cruxcat/pkg/adapters/sqlite"
	"github.com/glebone/cruxcat/pkg/ports"
)

// newApp assembles the real dependency set from the persistent flags.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	levelStr, _ := cmd.Flags().GetString("log-level")

	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	return &cli.App{
		Config: cfg,
		Runner: process.NewRunner(),
		Logger: logging.New(level),
		Out:    cmd.OutOrStdout(),
	}, nil
}

// openStore opens the run history database. Maintenance commands keep
// working without history, so a failure here only logs a warning.
func openStore(app *cli.App) ports.ReportStore {
	store, err := sqlite.Open(app.Config.DBPath())
	if err != nil {
		app.Logger.Warn("run history unavailable", "err", err)
		return nil
	}
	return store
}
