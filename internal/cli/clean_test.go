package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/cli"
	"github.com/glebone/cruxcat/internal/testutils"
	"github.com/glebone/cruxcat/pkg/adapters/sqlite"
	"github.com/glebone/cruxcat/pkg/domain"
)

func TestClean(t *testing.T) {
	runner := testutils.NewFakeRunner()
	app, out := newTestApp(runner)

	base := t.TempDir()
	dir := filepath.Join(base, "firefox")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	archive := filepath.Join(dir, "firefox#103.0-1.pkg.tar.gz")
	require.NoError(t, os.WriteFile(archive, []byte("payload"), 0o644))

	app.Config.PortsDirs = []string{base}
	app.Config.StateDir = filepath.Join(t.TempDir(), "state")

	store, err := sqlite.Open(app.Config.DBPath())
	require.NoError(t, err)
	defer store.Close()

	err = cli.Clean(context.Background(), app, store)
	require.NoError(t, err)

	assert.NoFileExists(t, archive)
	assert.Contains(t, out.String(), "Deleted 1 package archives")
	assert.Contains(t, out.String(), "Clean report saved to ")

	rec, err := store.LatestRun(context.Background(), domain.RunClean)
	require.NoError(t, err)
	assert.Equal(t, domain.RunClean, rec.Kind)

	entries, err := os.ReadDir(app.Config.ReportDir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestClean_WithoutHistoryStore(t *testing.T) {
	runner := testutils.NewFakeRunner()
	app, out := newTestApp(runner)
	app.Config.PortsDirs = []string{t.TempDir()}
	app.Config.StateDir = filepath.Join(t.TempDir(), "state")

	err := cli.Clean(context.Background(), app, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Deleted 0 package archives")
}
