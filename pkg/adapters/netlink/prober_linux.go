//go:build linux

// Package netlink probes network interface state through the kernel's
// netlink interface, implementing ports.LinkProber.
package netlink

import (
	"errors"
	"fmt"
	"net"

	vnetlink "github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/glebone/cruxcat/pkg/ports"
)

// Prober inspects links via netlink. Read-only.
type Prober struct{}

var _ ports.LinkProber = Prober{}

// Probe returns the state of the named interface. A missing interface
// is not an error: Exists is simply false.
func (Prober) Probe(name string) (ports.LinkState, error) {
	state := ports.LinkState{Name: name}

	link, err := vnetlink.LinkByName(name)
	if err != nil {
		var notFound vnetlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return state, nil
		}
		return state, fmt.Errorf("probe link %s: %w", name, err)
	}

	attrs := link.Attrs()
	state.Exists = true
	state.Up = attrs.Flags&net.FlagUp != 0
	state.Running = attrs.RawFlags&unix.IFF_RUNNING != 0
	return state, nil
}
