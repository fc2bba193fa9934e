package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/glebone/cruxcat/internal/prt"
	"github.com/glebone/cruxcat/internal/report"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Clean deletes built package archives from the ports trees and
// reports the space freed. Deletions are committed as they happen.
func Clean(ctx context.Context, app *App, store ports.ReportStore) error {
	cleaner := prt.NewCleaner(app.Config.PortsDirs)

	started := time.Now()
	res, err := cleaner.Clean()
	if err != nil {
		return err
	}

	for _, f := range res.Deleted {
		app.Logger.Debug("deleted package archive", "file", f)
	}
	fmt.Fprintf(app.Out, "Deleted %d package archives, freed %s.\n",
		len(res.Deleted), humanize.IBytes(res.FreedBytes))

	rec := &domain.RunRecord{
		Kind:       domain.RunClean,
		StartedAt:  started,
		FinishedAt: time.Now(),
		FreedBytes: res.FreedBytes,
		Deleted:    res.Deleted,
	}

	if store != nil {
		if _, err := store.SaveRun(ctx, rec); err != nil {
			app.Logger.Warn("could not record run history", "err", err)
		}
	}

	path, err := report.WriteFile(app.Config.ReportDir(), rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Clean report saved to %s\n", path)
	return nil
}
