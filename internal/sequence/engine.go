package sequence

import (
	"context"
	"log/slog"
	"time"

	"github.com/glebone/cruxcat/internal/logging"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Engine executes an ordered list of steps against a CommandRunner,
// aborting on the first failure. A step's status is checked
// immediately after it runs, before any other step executes; there is
// no retry and no rollback; every completed step is a committed
// external side effect.
type Engine struct {
	runner ports.CommandRunner
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New creates an Engine bound to the given runner.
func New(runner ports.CommandRunner, opts ...Option) *Engine {
	e := &Engine{
		runner: runner,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes steps strictly in order. The first failing step aborts
// the run and returns a *domain.StepError naming it; later steps never
// execute. A nil return means every step reported a zero status.
//
// Exec-kind steps replace the process image on success, so control
// reaches the status check after them only when the replacement itself
// failed to start.
func (e *Engine) Run(ctx context.Context, steps []domain.Step) error {
	for _, step := range steps {
		e.emit(ctx, e.hooks.OnStepStart, step, nil)
		e.logger.InfoContext(ctx, "running step", "step", step.Label, "cmd", step.Command.String())

		var err error
		switch step.Kind {
		case domain.KindExec:
			err = e.runner.Exec(step.Command)
		default:
			err = e.runner.Run(ctx, step.Command)
		}

		e.emit(ctx, e.hooks.OnStepEnd, step, err)
		if err != nil {
			e.logger.ErrorContext(ctx, "step failed", "step", step.Label, "err", err)
			return &domain.StepError{Label: step.Label, Err: err}
		}
	}
	return nil
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.StepEvent), step domain.Step, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.StepEvent{
		Timestamp: time.Now(),
		Label:     step.Label,
		Command:   step.Command.String(),
		Err:       err,
	})
}
