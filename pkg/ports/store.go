package ports

import (
	"context"

	"github.com/glebone/cruxcat/pkg/domain"
)

// ReportStore persists maintenance run history.
// Returns domain.ErrRunNotFound when a lookup misses.
type ReportStore interface {
	// SaveRun persists a finished run and returns its assigned ID.
	SaveRun(ctx context.Context, rec *domain.RunRecord) (int64, error)

	// LatestRun retrieves the most recent run of the given kind.
	LatestRun(ctx context.Context, kind domain.RunKind) (*domain.RunRecord, error)

	// ListRuns retrieves up to limit runs, newest first, without outcomes.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	Close() error
}
