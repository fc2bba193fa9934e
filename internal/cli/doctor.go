package cli

import (
	"errors"
	"fmt"

	"github.com/glebone/cruxcat/internal/doctor"
	"github.com/glebone/cruxcat/internal/ui"
	"github.com/glebone/cruxcat/pkg/ports"
)

// ErrDoctorFailed signals that at least one diagnosis check failed.
var ErrDoctorFailed = errors.New("doctor found problems")

// Doctor prints the machine diagnosis checklist. Read-only; never
// mutates interface, process or file state.
func Doctor(app *App, prober ports.LinkProber) error {
	checks := doctor.New(app.Config, prober).Run()

	for _, c := range checks {
		if c.OK {
			fmt.Fprintln(app.Out, ui.SuccessMsg("%s: %s", c.Name, c.Detail))
		} else {
			fmt.Fprintln(app.Out, ui.ErrorMsg("%s: %s", c.Name, c.Detail))
		}
	}

	if doctor.Failed(checks) {
		return ErrDoctorFailed
	}
	fmt.Fprintln(app.Out, "Machine looks ready.")
	return nil
}
