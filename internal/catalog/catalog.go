// Package catalog defines the development task table for the agent
// project: environment creation, dependency management via uv, browser
// setup via playwright, example runs, pytest invocation, and cleanup.
// The table is declarative; all execution semantics live in the
// dispatcher.
package catalog

import (
	"github.com/deepresearch/agentdev/internal/config"
	"github.com/deepresearch/agentdev/internal/registry"
)

// Build constructs the task registry from config. It is called once at
// startup; the returned registry is never mutated afterwards.
func Build(cfg *config.Config) *registry.Registry {
	reg := registry.New()

	reg.SetParamDefault("PYTHON_VERSION", cfg.PythonVersion)
	reg.SetParamDefault("VENV_DIR", cfg.VenvDir)
	reg.SetParamDefault("LOCK_FILE", cfg.LockFile)

	uv := cfg.PackageManager
	playwrightInstall := registry.Step{
		Exe:  uv,
		Args: []string{"run", "playwright", "install", "chromium", "--with-deps"},
	}

	reg.MustRegister(&registry.Task{
		Name:        "help",
		Description: "Show this task catalog",
		Action:      helpAction(reg),
	})

	reg.MustRegister(&registry.Task{
		Name:        "venv",
		Description: "Create the virtual environment",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"venv", "{{VENV_DIR}}", "--python", "{{PYTHON_VERSION}}"}},
		},
	})

	// install and install-requirements stay distinct: they read different
	// dependency manifests (pyproject.toml vs requirements.txt).
	reg.MustRegister(&registry.Task{
		Name:        "install",
		Description: "Install the project and browser automation deps",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"pip", "install", "-e", "."}},
			playwrightInstall,
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "install-requirements",
		Description: "Install pinned dependencies from requirements.txt",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"pip", "install", "-r", "requirements.txt"}},
			playwrightInstall,
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "add",
		Description: "Add a package to the project",
		Params:      []registry.Param{{Name: "PKG", Required: true}},
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"add", "{{PKG}}"}},
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "run",
		Description: "Start the agent in interactive mode",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"run", "python", "main.py"}},
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "run-general",
		Description: "Run the general example script",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"run", "python", "examples/run_general.py"}},
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "run-gaia",
		Description: "Run the GAIA evaluation example",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"run", "python", "examples/run_gaia.py"}},
		},
	})

	reg.MustRegister(&registry.Task{
		Name:        "test",
		Description: "Run the test suite",
		Steps: []registry.Step{
			{Exe: uv, Args: []string{"run", "pytest", "tests"}},
		},
	})

	// rm -rf / rm -f keep this idempotent: running clean twice succeeds
	// whether or not the environment or lock file still exists.
	reg.MustRegister(&registry.Task{
		Name:        "clean",
		Description: "Remove the virtual environment and lock file",
		Steps: []registry.Step{
			{Exe: "rm", Args: []string{"-rf", "{{VENV_DIR}}"}},
			{Exe: "rm", Args: []string{"-f", "{{LOCK_FILE}}"}},
		},
	})

	// help is registered, so this cannot fail.
	if err := reg.SetDefaultTask("help"); err != nil {
		panic(err)
	}

	return reg
}
