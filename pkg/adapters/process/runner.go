package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Runner implements ports.CommandRunner on top of os/exec. It is the
// only place cruxcat touches the host process table.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithStdio overrides the streams inherited by Run commands.
// Mostly useful in tests; the defaults are the process's own stdio.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a Runner wired to the current process's stdio.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run executes the command with inherited stdio and waits for it.
// A missing binary and a non-zero exit both come back as plain errors;
// callers are not expected to tell them apart.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Output executes the command capturing stdout and stderr. The
// captured result is returned even when the command fails, so callers
// can inspect stderr for recovery decisions (e.g. pkgmk checksum
// regeneration).
func (r *Runner) Output(ctx context.Context, cmd domain.Command) (domain.Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := domain.Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return res, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return res, nil
}
