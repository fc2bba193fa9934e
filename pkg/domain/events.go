package domain

import (
	"context"
	"time"
)

// StepEvent describes the start or end of a sequence step.
type StepEvent struct {
	Timestamp time.Time
	Label     string
	Command   string
	Err       error // nil on start events and on successful ends
}

// LifecycleHooks defines callbacks for sequencer observability.
// Hooks observe only; they cannot veto, retry or reorder a step.
type LifecycleHooks struct {
	OnStepStart func(context.Context, *StepEvent)
	OnStepEnd   func(context.Context, *StepEvent)
}
