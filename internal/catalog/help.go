package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/deepresearch/agentdev/internal/registry"
)

// helpAction returns the builtin catalog printer: every registered task
// name and description, once each, in registration order.
func helpAction(reg *registry.Registry) registry.Action {
	return func(_ context.Context, out io.Writer) error {
		bold := color.New(color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Fprintf(out, "%s — development tasks for the deep research agent\n\n", bold("agentdev"))
		fmt.Fprintf(out, "Usage: agentdev <task> [KEY=value ...]\n\n")

		width := 0
		for task := range reg.Tasks() {
			if len(taskHeading(task)) > width {
				width = len(taskHeading(task))
			}
		}

		for task := range reg.Tasks() {
			heading := taskHeading(task)
			padding := width - len(heading)
			fmt.Fprintf(out, "  %s%*s  %s\n", cyan(heading), padding, "", task.Description)
		}

		fmt.Fprintf(out, "\nDefaults:")
		for _, key := range []string{"PYTHON_VERSION", "VENV_DIR", "LOCK_FILE"} {
			fmt.Fprintf(out, " %s=%s", key, reg.ParamDefaults()[key])
		}
		fmt.Fprintln(out)
		return nil
	}
}

// taskHeading renders the task name plus its required parameters, e.g.
// "add PKG=<value>".
func taskHeading(task *registry.Task) string {
	heading := task.Name
	for _, p := range task.RequiredParams() {
		heading += fmt.Sprintf(" %s=<value>", p)
	}
	return heading
}
