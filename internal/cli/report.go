package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/glebone/cruxcat/internal/report"
	"github.com/glebone/cruxcat/internal/ui"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// ReportOptions configures the report viewer.
type ReportOptions struct {
	List  bool
	Limit int
}

// Report shows the most recent update run rendered for the terminal,
// or with List set, the run history table.
func Report(ctx context.Context, app *App, store ports.ReportStore, opts ReportOptions) error {
	if opts.List {
		runs, err := store.ListRuns(ctx, opts.Limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(app.Out, "No runs recorded yet.")
			return nil
		}
		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			rows = append(rows, []string{
				strconv.FormatInt(r.ID, 10),
				string(r.Kind),
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				humanize.IBytes(r.FreedBytes),
			})
		}
		fmt.Fprintln(app.Out, ui.Table([]string{"ID", "Kind", "Started", "Freed"}, rows))
		return nil
	}

	rec, err := store.LatestRun(ctx, domain.RunUpdate)
	if errors.Is(err, domain.ErrRunNotFound) {
		fmt.Fprintln(app.Out, "No update runs recorded yet.")
		return nil
	}
	if err != nil {
		return err
	}

	md := report.Markdown(rec)
	rendered, err := report.RenderTerminal(md)
	if err != nil {
		// Raw markdown still beats nothing.
		fmt.Fprint(app.Out, md)
		return nil
	}
	fmt.Fprint(app.Out, rendered)
	return nil
}
