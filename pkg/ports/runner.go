package ports

import (
	"context"

	"github.com/glebone/cruxcat/pkg/domain"
)

// CommandRunner abstracts external process execution so sequences and
// maintenance flows can be tested without mutating the host.
//
// Implementations must treat "binary not found" and "exited non-zero"
// identically: both are just a failed command.
type CommandRunner interface {
	// Run executes the command, streaming output to the inherited
	// stdio, and returns an error on non-zero exit.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and captures stdout/stderr instead
	// of streaming them.
	Output(ctx context.Context, cmd domain.Command) (domain.Result, error)

	// Exec replaces the current process image with the command.
	// It returns only when the replacement fails to start.
	Exec(cmd domain.Command) error
}
