package sequence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebone/cruxcat/internal/sequence"
	"github.com/glebone/cruxcat/internal/testutils"
	"github.com/glebone/cruxcat/pkg/domain"
)

func TestEngine_RunsStepsInOrder(t *testing.T) {
	runner := testutils.NewFakeRunner()
	eng := sequence.New(runner)

	steps := []domain.Step{
		domain.Run("first", "echo", "one"),
		domain.Run("second", "echo", "two"),
		domain.Run("third", "echo", "three"),
	}

	err := eng.Run(context.Background(), steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo one", "echo two", "echo three"}, runner.Calls)
}

func TestEngine_AbortsOnFirstFailure(t *testing.T) {
	runner := testutils.NewFakeRunner()
	runner.FailCommands("echo two")
	eng := sequence.New(runner)

	steps := []domain.Step{
		domain.Run("first", "echo", "one"),
		domain.Run("second", "echo", "two"),
		domain.Run("third", "echo", "three"),
	}

	err := eng.Run(context.Background(), steps)
	require.Error(t, err)

	var stepErr *domain.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "second", stepErr.Label)

	// The failing step aborts everything after it.
	assert.Equal(t, []string{"echo one", "echo two"}, runner.Calls)
}

func TestEngine_ExecStepsUseProcessReplacement(t *testing.T) {
	runner := testutils.NewFakeRunner()
	eng := sequence.New(runner)

	steps := []domain.Step{
		domain.Run("audio", "pulseaudio", "--start"),
		domain.Exec("desktop", "startxfce4"),
	}

	err := eng.Run(context.Background(), steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"pulseaudio --start"}, runner.Calls)
	assert.Equal(t, []string{"startxfce4"}, runner.ExecCalls)
}

func TestEngine_ExecFailureIsAStepFailure(t *testing.T) {
	runner := testutils.NewFakeRunner()
	runner.FailOn["startxfce4"] = errors.New("executable file not found")
	eng := sequence.New(runner)

	err := eng.Run(context.Background(), []domain.Step{domain.Exec("desktop", "startxfce4")})

	var stepErr *domain.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "desktop", stepErr.Label)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	runner := testutils.NewFakeRunner()
	runner.FailCommands("dhcpcd")

	var started, ended []string
	var lastErr error
	hooks := domain.LifecycleHooks{
		OnStepStart: func(ctx context.Context, ev *domain.StepEvent) {
			started = append(started, ev.Label)
		},
		OnStepEnd: func(ctx context.Context, ev *domain.StepEvent) {
			ended = append(ended, ev.Label)
			lastErr = ev.Err
		},
	}

	eng := sequence.New(runner, sequence.WithLifecycleHooks(hooks))
	steps := []domain.Step{
		domain.Run("link up", "ip", "link", "set", "wlp59s0", "up"),
		domain.Run("lease", "dhcpcd", "wlp59s0"),
		domain.Run("never runs", "echo", "unreachable"),
	}

	err := eng.Run(context.Background(), steps)
	require.Error(t, err)

	assert.Equal(t, []string{"link up", "lease"}, started)
	assert.Equal(t, []string{"link up", "lease"}, ended)
	assert.Error(t, lastErr, "end hook of the failing step carries its error")
}

func TestEngine_EmptySequenceSucceeds(t *testing.T) {
	eng := sequence.New(testutils.NewFakeRunner())
	assert.NoError(t, eng.Run(context.Background(), nil))
}
