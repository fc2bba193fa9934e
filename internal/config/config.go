package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where cruxcat looks for its configuration unless
// --config says otherwise.
const DefaultPath = "/etc/cruxcat/config.yaml"

// Place is a known wireless location: the network block written into
// wpa_supplicant.conf when that place is selected.
type Place struct {
	SSID string `yaml:"ssid"`
	PSK  string `yaml:"psk"`
}

// Config holds the machine-specific knobs of the bring-up and
// maintenance flows. Every field has a default matching the Blahodatne
// CruxPad, so a missing config file is perfectly fine.
type Config struct {
	// Interface is the wireless interface brought up at startup.
	Interface string `yaml:"interface"`

	// User is the unprivileged account the desktop session runs as.
	User string `yaml:"user"`

	// WPAConf is the supplicant configuration file path.
	WPAConf string `yaml:"wpa_conf"`

	// Places maps location names to wireless network credentials.
	Places map[string]Place `yaml:"places"`

	// PortsDirs are the CRUX ports trees searched for port directories.
	PortsDirs []string `yaml:"ports_dirs"`

	// StateDir holds the run history database and report files.
	StateDir string `yaml:"state_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interface: "wlp59s0",
		User:      "glebone",
		WPAConf:   "/etc/wpa_supplicant/wpa_supplicant.conf",
		Places: map[string]Place{
			"dacha": {SSID: "NeoMars5G", PSK: "krysovus"},
			"home":  {SSID: "cathost", PSK: "krysovus"},
		},
		PortsDirs: []string{
			"/usr/ports/core",
			"/usr/ports/opt",
			"/usr/ports/contrib",
			"/usr/ports/xfce",
			"/usr/ports/xorg",
			"/usr/ports/xfce4",
		},
		StateDir: "/var/lib/cruxcat",
	}
}

// Load reads the YAML configuration at path, merging it over the
// defaults. A missing file is not an error: defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DBPath is the run history database file.
func (c Config) DBPath() string {
	return filepath.Join(c.StateDir, "cruxcat.db")
}

// ReportDir is where markdown reports are written.
func (c Config) ReportDir() string {
	return filepath.Join(c.StateDir, "reports")
}
