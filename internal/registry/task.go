package registry

import (
	"context"
	"io"
)

// Param declares an input a task accepts. Required parameters must be
// supplied by the caller before any step may execute.
type Param struct {
	Name     string
	Required bool
}

// Step is one structured subprocess invocation: an executable plus an
// ordered argument list. Arguments may contain {{NAME}} placeholders that
// the dispatcher fills from parameters at run time. Steps are never joined
// into a shell string, so parameter values cannot smuggle in extra
// arguments or shell metacharacters.
type Step struct {
	Exe  string
	Args []string
}

// Action is the body of a builtin task (the help catalog printer). It
// replaces Steps for tasks that do not delegate to an external tool.
type Action func(ctx context.Context, out io.Writer) error

// Task is a named, ordered sequence of external command invocations, or a
// single builtin action.
type Task struct {
	Name        string
	Description string
	Params      []Param
	Steps       []Step
	Action      Action
}

// RequiredParams returns the names of the parameters the task cannot run
// without.
func (t *Task) RequiredParams() []string {
	var names []string
	for _, p := range t.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}
