package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/pkg/adapters/sqlite"
	"github.com/glebone/cruxcat/pkg/domain"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "state", "cruxcat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveAndLatestRun(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := &domain.RunRecord{
		Kind:       domain.RunUpdate,
		StartedAt:  time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 30, 14, 42, 0, 0, time.UTC),
		Outcomes: []domain.PortOutcome{
			{Port: domain.Port{Name: "firefox", Installed: "102.0-1", Available: "103.0-1"}, Status: domain.StatusUpdated},
			{Port: domain.Port{Name: "glib", Installed: "2.72.1-1", Available: "2.72.3-1"}, Status: domain.StatusSkipped},
		},
	}

	id, err := store.SaveRun(ctx, rec)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, rec.ID)

	got, err := store.LatestRun(ctx, domain.RunUpdate)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.RunUpdate, got.Kind)
	assert.True(t, got.StartedAt.Equal(rec.StartedAt))
	require.Len(t, got.Outcomes, 2)
	assert.Equal(t, "firefox", got.Outcomes[0].Port.Name)
	assert.Equal(t, domain.StatusUpdated, got.Outcomes[0].Status)
}

func TestStore_LatestRunFiltersByKind(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.SaveRun(ctx, &domain.RunRecord{
		Kind: domain.RunUpdate, StartedAt: time.Now(), FinishedAt: time.Now(),
	})
	require.NoError(t, err)

	cleanID, err := store.SaveRun(ctx, &domain.RunRecord{
		Kind: domain.RunClean, StartedAt: time.Now(), FinishedAt: time.Now(), FreedBytes: 2048,
	})
	require.NoError(t, err)

	got, err := store.LatestRun(ctx, domain.RunClean)
	require.NoError(t, err)
	assert.Equal(t, cleanID, got.ID)
	assert.Equal(t, uint64(2048), got.FreedBytes)
}

func TestStore_LatestRunEmpty(t *testing.T) {
	store := openStore(t)

	_, err := store.LatestRun(context.Background(), domain.RunUpdate)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestStore_ListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.SaveRun(ctx, &domain.RunRecord{
			Kind: domain.RunUpdate, StartedAt: time.Now(), FinishedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Greater(t, runs[0].ID, runs[1].ID, "newest first")
}
