package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/glebone/cruxcat/internal/boot"
	"github.com/glebone/cruxcat/internal/sequence"
)

// StartOptions configures the bring-up command.
type StartOptions struct {
	// Place, when set, rewrites the supplicant configuration for the
	// named location before the sequence runs.
	Place string

	// SessionCommand overrides the command line handed to `su -c`.
	// Empty means the running binary re-invoked with "session".
	SessionCommand string
}

// Start runs the outer bring-up sequence: interface up, supplicant,
// DHCP, then the switch into the user session. The first failing step
// aborts everything and comes back as a *domain.StepError; on full
// success the confirmation line is printed. Completed steps are
// committed side effects either way; there is nothing to roll back.
func Start(ctx context.Context, app *App, opts StartOptions) error {
	if opts.Place != "" {
		if err := Place(app, opts.Place); err != nil {
			return err
		}
	}

	sessionCmd := opts.SessionCommand
	if sessionCmd == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve own binary: %w", err)
		}
		sessionCmd = exe + " session"
	}

	eng := sequence.New(app.Runner, sequence.WithLogger(app.Logger))
	if err := eng.Run(ctx, boot.Outer(app.Config, sessionCmd)); err != nil {
		return err
	}

	fmt.Fprintln(app.Out, "All commands completed successfully.")
	return nil
}

// Session runs the inner user-context sequence: audio server, then the
// desktop launcher. On success the launcher has replaced the process,
// so this only ever returns on failure (or under a fake runner).
func Session(ctx context.Context, app *App) error {
	eng := sequence.New(app.Runner, sequence.WithLogger(app.Logger))
	return eng.Run(ctx, boot.Session())
}
