// Package boot defines the machine bring-up sequences: the fixed,
// ordered command lists the sequence engine runs at startup.
package boot

import (
	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/pkg/domain"
)

// Outer returns the bring-up sequence run in the root context:
// wireless interface up, supplicant (daemonizes itself via -B, never
// waited on afterwards), DHCP lease, then the switch to the session
// user. sessionCmd is the command line `su -c` hands to the user's
// shell, normally the running binary re-invoked with "session".
//
// The outer engine only ever observes the aggregate exit status of the
// su step; whatever happens inside the user context surfaces through
// that single code.
func Outer(cfg config.Config, sessionCmd string) []domain.Step {
	return []domain.Step{
		domain.Run("ip link set "+cfg.Interface+" up",
			"ip", "link", "set", cfg.Interface, "up"),
		domain.Run("wpa_supplicant",
			"wpa_supplicant", "-B", "-i", cfg.Interface, "-c", cfg.WPAConf),
		domain.Run("dhcpcd",
			"dhcpcd", cfg.Interface),
		domain.Run("su "+cfg.User,
			"su", cfg.User, "-c", sessionCmd),
	}
}

// Session returns the inner sequence executed as the unprivileged
// user: audio server, then the desktop launcher. The launcher step
// replaces the process, so its status check is reachable only when
// startxfce4 cannot start at all.
func Session() []domain.Step {
	return []domain.Step{
		domain.Run("pulseaudio", "pulseaudio", "--start"),
		domain.Exec("startxfce4", "startxfce4"),
	}
}
