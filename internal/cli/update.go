package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebone/cruxcat/internal/prt"
	"github.com/glebone/cruxcat/internal/report"
	"github.com/glebone/cruxcat/internal/ui"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// UpdateOptions mirrors the updater flags.
type UpdateOptions struct {
	Limit   int      // -n: cap on ports processed this run
	SkipMD5 bool     // --skip-md5
	Skip    []string // --skip
	Only    []string // --list
}

// Update drives a full ports update run: diff, per-port update with
// the original's retry behavior, summary table, history record and
// report file. A single port failing does not abort the run; its
// status just says so in the summary.
func Update(ctx context.Context, app *App, store ports.ReportStore, opts UpdateOptions) error {
	client := prt.NewClient(app.Runner, app.Config.PortsDirs,
		prt.WithLogger(app.Logger), prt.WithProgress(app.Out))

	fmt.Fprintln(app.Out, "Retrieving list of outdated packages...")
	outdated, err := client.Outdated(ctx)
	if err != nil {
		return err
	}
	if len(outdated) == 0 {
		fmt.Fprintln(app.Out, "No ports need to be updated.")
		return nil
	}

	fmt.Fprintln(app.Out, "\nPorts that need to be updated:")
	fmt.Fprintln(app.Out, outdatedTable(outdated))

	sel := prt.Select(outdated, opts.Skip, opts.Only, opts.Limit)

	rec := &domain.RunRecord{Kind: domain.RunUpdate, StartedAt: time.Now()}
	status := make(map[string]domain.UpdateStatus, len(outdated))
	for name, st := range sel.Preset {
		status[name] = st
	}

	for _, p := range sel.Update {
		fmt.Fprintf(app.Out, "\n### Updating %s from version %s to %s...\n", p.Name, p.Installed, p.Available)
		if err := client.Update(ctx, p, opts.SkipMD5); err != nil {
			app.Logger.Error("port update failed", "port", p.Name, "err", err)
			fmt.Fprintln(app.Out, ui.ErrorMsg("%s: %v", p.Name, err))
			status[p.Name] = domain.StatusFailed
			continue
		}
		fmt.Fprintln(app.Out, ui.SuccessMsg("Successfully updated %s.", p.Name))
		status[p.Name] = domain.StatusUpdated
	}

	// Summary keeps diff order, like the original.
	for _, p := range outdated {
		rec.Outcomes = append(rec.Outcomes, domain.PortOutcome{Port: p, Status: status[p.Name]})
	}
	rec.FinishedAt = time.Now()

	fmt.Fprintln(app.Out, "\nSummary:")
	fmt.Fprintln(app.Out, summaryTable(rec))
	fmt.Fprintln(app.Out, countsLine(rec))

	if store != nil {
		if _, err := store.SaveRun(ctx, rec); err != nil {
			app.Logger.Warn("could not record run history", "err", err)
		}
	}

	path, err := report.WriteFile(app.Config.ReportDir(), rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "\nReport saved to %s\n", path)
	return nil
}

func outdatedTable(outdated []domain.Port) string {
	rows := make([][]string, 0, len(outdated))
	for _, p := range outdated {
		rows = append(rows, []string{p.Name, p.Installed, p.Available})
	}
	return ui.Table([]string{"Port Name", "Installed Version", "Available Version"}, rows)
}

func summaryTable(rec *domain.RunRecord) string {
	rows := make([][]string, 0, len(rec.Outcomes))
	for _, o := range rec.Outcomes {
		rows = append(rows, []string{o.Port.Name, string(o.Status)})
	}
	return ui.Table([]string{"Port Name", "Status"}, rows)
}

// countsLine renders per-status totals in a fixed order.
func countsLine(rec *domain.RunRecord) string {
	counts := rec.Counts()
	parts := make([]string, 0, 4)
	for _, st := range []domain.UpdateStatus{
		domain.StatusUpdated, domain.StatusFailed, domain.StatusSkipped, domain.StatusNotListed,
	} {
		if n := counts[st]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, st))
		}
	}
	return strings.Join(parts, ", ")
}
