// Package wpa writes the supplicant configuration for a named place.
// The file layout is fixed and intentionally matches what the original
// Blahodatne setup used; the supplicant owns the format beyond that.
package wpa

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebone/cruxcat/internal/config"
)

const header = "ctrl_interface=DIR=/var/run/wpa_supplicant GROUP=wheel\n" +
	"update_config=1\n\n"

// Render returns the wpa_supplicant.conf contents for a place.
func Render(p config.Place) string {
	return header + fmt.Sprintf("network={\n    ssid=%q\n    psk=%q\n}\n", p.SSID, p.PSK)
}

// Write renders the configuration for a place and writes it to path.
// The file carries credentials, hence 0600.
func Write(path string, p config.Place) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(p)), 0o600); err != nil {
		return fmt.Errorf("write supplicant config: %w", err)
	}
	return nil
}
