package boot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/boot"
	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/pkg/domain"
)

func TestOuter_DefaultSequence(t *testing.T) {
	cfg := config.Default()
	steps := boot.Outer(cfg, "/usr/bin/cruxcat session")

	require.Len(t, steps, 4)

	labels := make([]string, 0, len(steps))
	for _, s := range steps {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{
		"ip link set wlp59s0 up",
		"wpa_supplicant",
		"dhcpcd",
		"su glebone",
	}, labels)

	assert.Equal(t, "ip link set wlp59s0 up", steps[0].Command.String())
	assert.Equal(t, "wpa_supplicant -B -i wlp59s0 -c /etc/wpa_supplicant/wpa_supplicant.conf",
		steps[1].Command.String())
	assert.Equal(t, "dhcpcd wlp59s0", steps[2].Command.String())
	assert.Equal(t, "su glebone -c /usr/bin/cruxcat session", steps[3].Command.String())

	for _, s := range steps {
		assert.Equal(t, domain.KindRun, s.Kind, "outer steps all wait for their status")
	}
}

func TestOuter_FollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Interface = "wlan0"
	cfg.User = "alice"
	cfg.WPAConf = "/tmp/wpa.conf"

	steps := boot.Outer(cfg, "sh -c true")

	assert.Equal(t, "ip link set wlan0 up", steps[0].Label)
	assert.Equal(t, "su alice", steps[3].Label)
	assert.Equal(t, []string{"-B", "-i", "wlan0", "-c", "/tmp/wpa.conf"}, steps[1].Command.Args)
}

func TestSession_AudioThenDesktop(t *testing.T) {
	steps := boot.Session()

	require.Len(t, steps, 2)
	assert.Equal(t, "pulseaudio", steps[0].Label)
	assert.Equal(t, domain.KindRun, steps[0].Kind)
	assert.Equal(t, "pulseaudio --start", steps[0].Command.String())

	assert.Equal(t, "startxfce4", steps[1].Label)
	assert.Equal(t, domain.KindExec, steps[1].Kind, "the launcher replaces the process")
}
