package dispatcher

import "fmt"

// UnknownTaskError reports that the caller selected a task that does not
// exist in the registry.
type UnknownTaskError struct {
	Task string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q (run \"agentdev help\" to list available tasks)", e.Task)
}

// MissingParameterError reports a required parameter that was absent or
// empty. No subprocess has been started when this error is returned.
type MissingParameterError struct {
	Task  string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("task %q requires parameter %s", e.Task, e.Param)
}

// Usage returns the guidance line shown to the caller.
func (e *MissingParameterError) Usage() string {
	return fmt.Sprintf("Usage: agentdev %s %s=<value>", e.Task, e.Param)
}

// StepError reports a delegated tool that exited non-zero. The exit code is
// propagated without modification and later steps of the task never ran.
type StepError struct {
	Task string
	Step int
	Exe  string
	Code int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("task %q step %d (%s) exited with code %d", e.Task, e.Step, e.Exe, e.Code)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
