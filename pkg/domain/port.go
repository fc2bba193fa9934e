package domain

import "time"

// Port is one entry from `prt-get diff`: an installed port with a
// newer version available in the ports tree.
type Port struct {
	Name      string
	Installed string
	Available string
}

// UpdateStatus classifies the outcome of one port within a run.
type UpdateStatus string

const (
	StatusUpdated   UpdateStatus = "updated"
	StatusFailed    UpdateStatus = "failed"
	StatusSkipped   UpdateStatus = "skipped"
	StatusNotListed UpdateStatus = "not in list"
)

// PortOutcome pairs a port with what happened to it during a run.
type PortOutcome struct {
	Port   Port
	Status UpdateStatus
}

// RunKind distinguishes the maintenance flows recorded in history.
type RunKind string

const (
	RunUpdate RunKind = "update"
	RunClean  RunKind = "clean"
)

// RunRecord is the persisted outcome of one maintenance run.
type RunRecord struct {
	ID         int64
	Kind       RunKind
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []PortOutcome

	// FreedBytes is only meaningful for clean runs.
	FreedBytes uint64

	// Deleted lists the archives a clean run removed. Rendered into
	// the report file but not persisted in history.
	Deleted []string
}

// Counts tallies outcomes by status for summary rendering.
func (r *RunRecord) Counts() map[UpdateStatus]int {
	out := make(map[UpdateStatus]int)
	for _, o := range r.Outcomes {
		out[o.Status]++
	}
	return out
}
