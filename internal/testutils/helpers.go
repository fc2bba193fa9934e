// Package testutils provides test doubles shared across the package
// tests, primarily a scriptable fake of the CommandRunner port.
package testutils

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/glebone/cruxcat/pkg/domain"
)

// FakeRunner records every command handed to it and fails the ones
// whose rendered command line contains a configured substring. It
// never touches the host.
type FakeRunner struct {
	mu sync.Mutex

	// Calls holds the rendered command lines passed to Run and
	// Output, in order.
	Calls []string

	// ExecCalls holds the rendered command lines passed to Exec.
	ExecCalls []string

	// FailOn maps a command line substring to the error returned for
	// matching commands.
	FailOn map[string]error

	// Outputs maps an exact command line to the Result returned by
	// Output. Commands without an entry return an empty Result.
	Outputs map[string]domain.Result
}

// NewFakeRunner returns a runner where every command succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		FailOn:  map[string]error{},
		Outputs: map[string]domain.Result{},
	}
}

// FailCommands marks every command line containing sub as failing
// with a generic non-zero exit error.
func (f *FakeRunner) FailCommands(sub string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailOn[sub] = fmt.Errorf("exit status 1")
}

func (f *FakeRunner) Run(ctx context.Context, cmd domain.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := cmd.String()
	f.Calls = append(f.Calls, line)
	return f.errFor(line)
}

func (f *FakeRunner) Output(ctx context.Context, cmd domain.Command) (domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := cmd.String()
	f.Calls = append(f.Calls, line)
	return f.Outputs[line], f.errFor(line)
}

// Exec records the call and returns nil on success. The real adapter
// never returns on success; a nil here stands in for the process image
// having been replaced.
func (f *FakeRunner) Exec(cmd domain.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	line := cmd.String()
	f.ExecCalls = append(f.ExecCalls, line)
	return f.errFor(line)
}

func (f *FakeRunner) errFor(line string) error {
	for sub, err := range f.FailOn {
		if strings.Contains(line, sub) {
			return err
		}
	}
	return nil
}
