package domain

// StepKind selects how the sequencer dispatches a step's command.
type StepKind string

const (
	// KindRun executes the command and waits for its exit status.
	KindRun StepKind = "run"

	// KindExec replaces the current process image with the command.
	// A step of this kind returns only if the replacement fails to
	// start (e.g. missing binary); on success it never comes back.
	KindExec StepKind = "exec"
)

// Step is one external command invocation plus its immediate status
// check. Steps run strictly in order; the first non-zero status aborts
// the whole sequence. A step's side effects (interface state, spawned
// daemons) are committed the moment it runs; there is no rollback.
type Step struct {
	// Label identifies the step in failure messages
	// ("Error: <label> failed.").
	Label string

	Command Command
	Kind    StepKind
}

// Run builds an ordinary wait-for-exit step.
func Run(label, name string, args ...string) Step {
	return Step{
		Label:   label,
		Command: Command{Name: name, Args: args},
		Kind:    KindRun,
	}
}

// Exec builds a process-replacement step.
func Exec(label, name string, args ...string) Step {
	return Step{
		Label:   label,
		Command: Command{Name: name, Args: args},
		Kind:    KindExec,
	}
}
