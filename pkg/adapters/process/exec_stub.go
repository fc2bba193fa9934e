//go:build !linux

package process

import (
	"fmt"

	"github.com/glebone/cruxcat/pkg/domain"
)

// Exec is only supported on Linux, which is the platform CRUX runs on.
func (r *Runner) Exec(cmd domain.Command) error {
	return fmt.Errorf("exec %s: process replacement is not supported on this platform", cmd.Name)
}
