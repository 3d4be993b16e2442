// Package registry holds the immutable table of named tasks. The table is
// built once at process start; after that the dispatcher only reads it.
package registry

import (
	"fmt"
	"iter"
)

// Registry maps task names to tasks, preserving registration order for
// catalog display. It also carries registry-level parameter defaults (the
// interpreter version, the environment directory) that individual runs may
// override.
type Registry struct {
	order       []string
	tasks       map[string]*Task
	defaults    map[string]string
	defaultTask string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tasks:    make(map[string]*Task),
		defaults: make(map[string]string),
	}
}

// Register adds a task. Duplicate or empty names and tasks with neither
// steps nor an action are configuration errors.
func (r *Registry) Register(t *Task) error {
	if t == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if t.Name == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if _, exists := r.tasks[t.Name]; exists {
		return fmt.Errorf("task %q already registered", t.Name)
	}
	if len(t.Steps) == 0 && t.Action == nil {
		return fmt.Errorf("task %q has no steps", t.Name)
	}
	r.order = append(r.order, t.Name)
	r.tasks[t.Name] = t
	return nil
}

// MustRegister panics on registration failure. The catalog is static
// configuration, so a failure here is a programming error caught at
// startup.
func (r *Registry) MustRegister(t *Task) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the task and whether it exists.
func (r *Registry) Lookup(name string) (*Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.order)
}

// Tasks yields every task in registration order. The sequence is lazy and
// restartable and never mutates registry state.
func (r *Registry) Tasks() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, name := range r.order {
			if !yield(r.tasks[name]) {
				return
			}
		}
	}
}

// SetDefaultTask designates the task run when the caller selects none.
func (r *Registry) SetDefaultTask(name string) error {
	if _, ok := r.tasks[name]; !ok {
		return fmt.Errorf("default task %q is not registered", name)
	}
	r.defaultTask = name
	return nil
}

// DefaultTask returns the designated default task name, or "" if none.
func (r *Registry) DefaultTask() string {
	return r.defaultTask
}

// SetParamDefault sets a registry-level default value for a parameter.
func (r *Registry) SetParamDefault(key, value string) {
	r.defaults[key] = value
}

// ParamDefaults returns a copy of the registry-level parameter defaults.
func (r *Registry) ParamDefaults() map[string]string {
	out := make(map[string]string, len(r.defaults))
	for k, v := range r.defaults {
		out[k] = v
	}
	return out
}
