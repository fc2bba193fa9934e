package domain

import "strings"

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory; empty means inherit the caller's.
	Dir string
}

// String renders the command line the way a shell user would type it.
// Used for logging and step labels, not for execution.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the captured output of a completed command.
type Result struct {
	Stdout string
	Stderr string
}
