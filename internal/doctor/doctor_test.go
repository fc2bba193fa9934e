package doctor_test

import (
	"errors"
	"io/fs"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/internal/doctor"
	"github.com/glebone/cruxcat/pkg/ports"
)

// fakeProber returns a fixed link state.
type fakeProber struct {
	state ports.LinkState
	err   error
}

func (p fakeProber) Probe(name string) (ports.LinkState, error) {
	return p.state, p.err
}

func healthyDoctor(cfg config.Config, prober ports.LinkProber) *doctor.Doctor {
	return doctor.New(cfg, prober,
		doctor.WithLookPath(func(bin string) (string, error) { return "/usr/bin/" + bin, nil }),
		doctor.WithStat(func(string) (fs.FileInfo, error) { return nil, nil }),
		doctor.WithLookupUser(func(name string) (*user.User, error) { return &user.User{Username: name}, nil }),
	)
}

func TestRun_AllHealthy(t *testing.T) {
	cfg := config.Default()
	d := healthyDoctor(cfg, fakeProber{state: ports.LinkState{Exists: true, Up: true, Running: true}})

	checks := d.Run()
	require.NotEmpty(t, checks)
	assert.False(t, doctor.Failed(checks))

	// Bring-up binaries come first, in sequence order.
	assert.Equal(t, "ip", checks[0].Name)
	assert.Equal(t, "wpa_supplicant", checks[1].Name)

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "prt-get")
	assert.Contains(t, names, "wpa config")
	assert.Contains(t, names, "interface wlp59s0")
	assert.Contains(t, names, "session user")
}

func TestRun_MissingBinary(t *testing.T) {
	cfg := config.Default()
	d := doctor.New(cfg, fakeProber{state: ports.LinkState{Exists: true}},
		doctor.WithLookPath(func(bin string) (string, error) {
			if bin == "startxfce4" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + bin, nil
		}),
		doctor.WithStat(func(string) (fs.FileInfo, error) { return nil, nil }),
		doctor.WithLookupUser(func(name string) (*user.User, error) { return &user.User{}, nil }),
	)

	checks := d.Run()
	assert.True(t, doctor.Failed(checks))

	for _, c := range checks {
		if c.Name == "startxfce4" {
			assert.False(t, c.OK)
			assert.Equal(t, "not found on PATH", c.Detail)
		}
	}
}

func TestRun_MissingInterface(t *testing.T) {
	d := healthyDoctor(config.Default(), fakeProber{state: ports.LinkState{Exists: false}})

	checks := d.Run()
	assert.True(t, doctor.Failed(checks))

	for _, c := range checks {
		if c.Name == "interface wlp59s0" {
			assert.False(t, c.OK)
			assert.Equal(t, "interface not present", c.Detail)
		}
	}
}

func TestRun_InterfaceDownIsStillOK(t *testing.T) {
	// The bring-up sets the link up itself; down is the expected
	// pre-start state.
	d := healthyDoctor(config.Default(), fakeProber{state: ports.LinkState{Exists: true}})

	for _, c := range d.Run() {
		if c.Name == "interface wlp59s0" {
			assert.True(t, c.OK)
			assert.Equal(t, "present, administratively down", c.Detail)
		}
	}
}

func TestRun_MissingUser(t *testing.T) {
	d := doctor.New(config.Default(), fakeProber{state: ports.LinkState{Exists: true}},
		doctor.WithLookPath(func(bin string) (string, error) { return "/usr/bin/" + bin, nil }),
		doctor.WithStat(func(string) (fs.FileInfo, error) { return nil, nil }),
		doctor.WithLookupUser(func(string) (*user.User, error) { return nil, user.UnknownUserError("glebone") }),
	)

	checks := d.Run()
	assert.True(t, doctor.Failed(checks))
	last := checks[len(checks)-1]
	assert.Equal(t, "session user", last.Name)
	assert.False(t, last.OK)
}
