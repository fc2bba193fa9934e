//go:build !linux

package netlink

import (
	"fmt"

	"github.com/glebone/cruxcat/pkg/ports"
)

// Prober is only functional on Linux; elsewhere every probe fails.
type Prober struct{}

var _ ports.LinkProber = Prober{}

func (Prober) Probe(name string) (ports.LinkState, error) {
	return ports.LinkState{Name: name}, fmt.Errorf("probe link %s: netlink requires linux", name)
}
