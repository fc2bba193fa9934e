package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/glebone/cruxcat/internal/prt"
	"github.com/glebone/cruxcat/internal/ui"
)

// CheckOptions configures the outdated-ports check.
type CheckOptions struct {
	// Available lists built packages per outdated port, highlighting
	// the version prt-get wants.
	Available bool

	// Install additionally installs the highlighted package. Unlike
	// the original script, installing is opt-in.
	Install bool
}

// Check reports outdated ports. The default output is a plain list of
// names, fit for piping.
func Check(ctx context.Context, app *App, opts CheckOptions) error {
	client := prt.NewClient(app.Runner, app.Config.PortsDirs,
		prt.WithLogger(app.Logger), prt.WithProgress(app.Out))

	outdated, err := client.Outdated(ctx)
	if err != nil {
		return err
	}
	if len(outdated) == 0 {
		fmt.Fprintln(app.Out, "No ports need to be updated.")
		return nil
	}

	if !opts.Available {
		for _, p := range outdated {
			fmt.Fprintln(app.Out, p.Name)
		}
		return nil
	}

	for _, p := range outdated {
		files, err := client.BuiltPackages(p.Name)
		if err != nil {
			if errors.Is(err, prt.ErrPortDirNotFound) {
				continue
			}
			return err
		}
		if len(files) == 0 {
			continue
		}

		fmt.Fprintf(app.Out, "\n%s:\n", p.Name)
		for _, f := range files {
			if !strings.Contains(f, p.Available) {
				fmt.Fprintln(app.Out, f)
				continue
			}
			fmt.Fprintln(app.Out, ui.Highlight(f))
			if opts.Install {
				dir, dirErr := client.PortDir(p.Name)
				if dirErr != nil {
					return dirErr
				}
				if err := client.Install(ctx, filepath.Join(dir, f)); err != nil {
					app.Logger.Error("install failed", "port", p.Name, "err", err)
					fmt.Fprintln(app.Out, ui.ErrorMsg("Failed to install %s.", p.Name))
				} else {
					fmt.Fprintln(app.Out, ui.SuccessMsg("Successfully updated %s.", p.Name))
				}
			}
		}
	}
	return nil
}
