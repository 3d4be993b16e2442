// Package dispatcher runs a named task from the registry: it validates
// required parameters, substitutes parameter values into argument slots,
// executes the task's steps strictly in order, and propagates the first
// non-zero exit code.
package dispatcher

import (
	"context"
	"io"
	"os"
	"regexp"

	"github.com/deepresearch/agentdev/internal/execx"
	"github.com/deepresearch/agentdev/internal/logger"
	"github.com/deepresearch/agentdev/internal/registry"
)

// Dispatcher executes tasks against a read-only registry. One task runs to
// completion (or first failure) before control returns to the caller; there
// is no parallelism, no retry, and no timeout.
type Dispatcher struct {
	registry *registry.Registry
	runner   execx.Runner

	// Out receives builtin task output (the help catalog).
	Out io.Writer
}

// New creates a dispatcher over the given registry and runner.
func New(reg *registry.Registry, runner execx.Runner) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		runner:   runner,
		Out:      os.Stdout,
	}
}

// Run dispatches the named task with the caller-provided parameters and
// returns the exit code for the process. An empty name selects the
// registry's default task. Usage errors (unknown task, missing required
// parameter) return 1 without starting any subprocess; a delegated tool's
// failure returns that tool's own exit code.
func (d *Dispatcher) Run(ctx context.Context, name string, provided map[string]string) (int, error) {
	if name == "" {
		name = d.registry.DefaultTask()
	}

	task, ok := d.registry.Lookup(name)
	if !ok {
		err := &UnknownTaskError{Task: name}
		logger.User.Error(err.Error())
		return 1, err
	}

	for _, param := range task.RequiredParams() {
		if provided[param] == "" {
			err := &MissingParameterError{Task: name, Param: param}
			logger.User.Error(err.Error())
			logger.User.Info(err.Usage())
			return 1, err
		}
	}

	if task.Action != nil {
		if err := task.Action(ctx, d.Out); err != nil {
			logger.User.Errorf("task %q failed: %v", name, err)
			return 1, err
		}
		return 0, nil
	}

	params := d.mergeParams(provided)

	logger.User.Startingf("Running task %q", name)
	for i, step := range task.Steps {
		args := substituteArgs(step.Args, params)
		logger.Op.WithFields(map[string]interface{}{
			"task": name,
			"step": i + 1,
			"exe":  step.Exe,
		}).Debug("executing step")

		res := d.runner.Run(ctx, step.Exe, args...)
		if res.Code != 0 {
			err := &StepError{Task: name, Step: i + 1, Exe: step.Exe, Code: res.Code, Err: res.Err}
			logger.User.Error(err.Error())
			return res.Code, err
		}
	}

	logger.User.Successf("Task %q completed", name)
	return 0, nil
}

// mergeParams layers caller-provided parameters over the registry-level
// defaults. Defaults already reflect the process environment because the
// catalog is built from config.
func (d *Dispatcher) mergeParams(provided map[string]string) map[string]string {
	params := d.registry.ParamDefaults()
	for k, v := range provided {
		params[k] = v
	}
	return params
}

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// substituteArgs fills {{NAME}} slots in each argument from params.
// Unresolved placeholders are left untouched; required ones are guaranteed
// present by the validation above. Substitution happens per argument, never
// across argument boundaries.
func substituteArgs(args []string, params map[string]string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = placeholderRe.ReplaceAllStringFunc(arg, func(m string) string {
			key := m[2 : len(m)-2]
			if v, ok := params[key]; ok {
				return v
			}
			return m
		})
	}
	return out
}
