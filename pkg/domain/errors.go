package domain

import (
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when a maintenance run cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// StepError reports the failure of a named sequence step. Every cause
// (missing binary, permission denied, non-zero exit) collapses into
// the same outcome; the label is the only differentiator surfaced to
// the user.
type StepError struct {
	Label string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Label, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
