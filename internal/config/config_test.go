package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "wlp59s0", cfg.Interface)
	assert.Equal(t, "glebone", cfg.User)
	assert.Equal(t, "/etc/wpa_supplicant/wpa_supplicant.conf", cfg.WPAConf)

	require.Contains(t, cfg.Places, "dacha")
	require.Contains(t, cfg.Places, "home")
	assert.Equal(t, "NeoMars5G", cfg.Places["dacha"].SSID)
	assert.Equal(t, "cathost", cfg.Places["home"].SSID)

	assert.Contains(t, cfg.PortsDirs, "/usr/ports/core")
	assert.Equal(t, "/var/lib/cruxcat/cruxcat.db", cfg.DBPath())
	assert.Equal(t, "/var/lib/cruxcat/reports", cfg.ReportDir())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
interface: wlan0
places:
  office:
    ssid: corpnet
    psk: hunter2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "wlan0", cfg.Interface)
	assert.Equal(t, "glebone", cfg.User, "untouched fields keep their default")
	assert.Equal(t, "corpnet", cfg.Places["office"].SSID)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interface: [broken"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
