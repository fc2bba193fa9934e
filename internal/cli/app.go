// Package cli implements the command logic behind cmd/cruxcat. The
// cobra layer stays thin; everything here takes explicit dependencies
// so tests can drive it with fakes.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// App bundles the dependencies shared by every command: the resolved
// configuration, the command runner and the logger. The cmd layer
// builds one per invocation; tests build theirs with fakes.
type App struct {
	Config config.Config
	Runner ports.CommandRunner
	Logger *slog.Logger
	Out    io.Writer
}

// FailureLine renders the user-facing diagnostic for a failed step.
// The exit code never varies (always 1); this line is the only thing
// telling failures apart.
func FailureLine(err *domain.StepError) string {
	return fmt.Sprintf("Error: %s failed.", err.Label)
}
