// Package doctor diagnoses the machine before a bring-up: are the
// external programs there, is the supplicant config in place, does the
// wireless interface exist, does the session user exist. It never
// mutates anything.
package doctor

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"os/user"

	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Binaries checked for the bring-up sequence.
var bootBinaries = []string{"ip", "wpa_supplicant", "dhcpcd", "su", "pulseaudio", "startxfce4"}

// Binaries checked for ports maintenance.
var maintenanceBinaries = []string{"prt-get", "pkgmk", "pkgadd", "sudo"}

// Check is one verdict with a human-readable detail line.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor runs the diagnosis against a config.
type Doctor struct {
	cfg    config.Config
	prober ports.LinkProber

	// Injectable for tests.
	lookPath   func(string) (string, error)
	stat       func(string) (fs.FileInfo, error)
	lookupUser func(string) (*user.User, error)
}

// Option configures the doctor.
type Option func(*Doctor)

// WithLookPath overrides binary resolution.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(d *Doctor) { d.lookPath = fn }
}

// WithStat overrides file probing.
func WithStat(fn func(string) (fs.FileInfo, error)) Option {
	return func(d *Doctor) { d.stat = fn }
}

// WithLookupUser overrides account resolution.
func WithLookupUser(fn func(string) (*user.User, error)) Option {
	return func(d *Doctor) { d.lookupUser = fn }
}

// New creates a Doctor for the given config and link prober.
func New(cfg config.Config, prober ports.LinkProber, opts ...Option) *Doctor {
	d := &Doctor{
		cfg:        cfg,
		prober:     prober,
		lookPath:   exec.LookPath,
		stat:       os.Stat,
		lookupUser: user.Lookup,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run performs every check and returns the verdicts in a fixed order.
func (d *Doctor) Run() []Check {
	var checks []Check

	for _, bin := range append(append([]string{}, bootBinaries...), maintenanceBinaries...) {
		if path, err := d.lookPath(bin); err == nil {
			checks = append(checks, Check{Name: bin, OK: true, Detail: path})
		} else {
			checks = append(checks, Check{Name: bin, OK: false, Detail: "not found on PATH"})
		}
	}

	if _, err := d.stat(d.cfg.WPAConf); err == nil {
		checks = append(checks, Check{Name: "wpa config", OK: true, Detail: d.cfg.WPAConf})
	} else {
		checks = append(checks, Check{Name: "wpa config", OK: false, Detail: fmt.Sprintf("%s missing", d.cfg.WPAConf)})
	}

	checks = append(checks, d.linkCheck())

	if _, err := d.lookupUser(d.cfg.User); err == nil {
		checks = append(checks, Check{Name: "session user", OK: true, Detail: d.cfg.User})
	} else {
		checks = append(checks, Check{Name: "session user", OK: false, Detail: fmt.Sprintf("user %s does not exist", d.cfg.User)})
	}

	return checks
}

func (d *Doctor) linkCheck() Check {
	name := "interface " + d.cfg.Interface
	state, err := d.prober.Probe(d.cfg.Interface)
	switch {
	case err != nil:
		return Check{Name: name, OK: false, Detail: err.Error()}
	case !state.Exists:
		return Check{Name: name, OK: false, Detail: "interface not present"}
	case state.Up && state.Running:
		return Check{Name: name, OK: true, Detail: "up, running"}
	case state.Up:
		return Check{Name: name, OK: true, Detail: "up, no carrier"}
	default:
		return Check{Name: name, OK: true, Detail: "present, administratively down"}
	}
}

// Failed reports whether any check in the set failed.
func Failed(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return true
		}
	}
	return false
}
