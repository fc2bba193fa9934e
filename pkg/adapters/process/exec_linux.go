//go:build linux

package process

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/glebone/cruxcat/pkg/domain"
)

// Exec replaces the current process image with the command. On success
// it never returns; the error path is reachable only when the binary
// cannot be resolved or execve itself fails.
func (r *Runner) Exec(cmd domain.Command) error {
	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	argv := append([]string{cmd.Name}, cmd.Args...)
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", cmd.Name, err)
	}
	return nil
}
