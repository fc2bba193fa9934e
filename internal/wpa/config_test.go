package wpa_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/config"
	"github.com/glebone/cruxcat/internal/wpa"
)

func TestRender(t *testing.T) {
	t.Run("dacha network block", func(t *testing.T) {
		got := wpa.Render(config.Place{SSID: "NeoMars5G", PSK: "krysovus"})
		want := "ctrl_interface=DIR=/var/run/wpa_supplicant GROUP=wheel\n" +
			"update_config=1\n\n" +
			"network={\n" +
			"    ssid=\"NeoMars5G\"\n" +
			"    psk=\"krysovus\"\n" +
			"}\n"
		assert.Equal(t, want, got)
	})

	t.Run("home network block", func(t *testing.T) {
		got := wpa.Render(config.Place{SSID: "cathost", PSK: "krysovus"})
		assert.Contains(t, got, "ssid=\"cathost\"")
		assert.Contains(t, got, "psk=\"krysovus\"")
	})
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "wpa_supplicant", "wpa_supplicant.conf")

	err := wpa.Write(path, config.Place{SSID: "cathost", PSK: "krysovus"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "credentials stay private")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wpa.Render(config.Place{SSID: "cathost", PSK: "krysovus"}), string(data))
}

func TestWrite_OverwritesPreviousPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wpa_supplicant.conf")

	require.NoError(t, wpa.Write(path, config.Place{SSID: "NeoMars5G", PSK: "krysovus"}))
	require.NoError(t, wpa.Write(path, config.Place{SSID: "cathost", PSK: "krysovus"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cathost")
	assert.NotContains(t, string(data), "NeoMars5G")
}
