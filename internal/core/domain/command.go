package domain

import "strings"

// Command is a synchronous invocation of an external process.
type Command struct {
	Name string
	Args []string
	// Env is the complete environment of the child, as "KEY=VALUE" entries.
	Env []string
	Dir string
	// Capture keeps the combined stdout and stderr in Result.Output.
	Capture bool
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is what an external process left behind.
type Result struct {
	ExitCode int
	Output   string
}
