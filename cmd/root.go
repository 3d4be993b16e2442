package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/deepresearch/agentdev/internal/catalog"
	"github.com/deepresearch/agentdev/internal/config"
	"github.com/deepresearch/agentdev/internal/dispatcher"
	"github.com/deepresearch/agentdev/internal/execx"
	"github.com/deepresearch/agentdev/internal/logger"
)

var (
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
	version  = "v0.1.0"

	rootCmd = &cobra.Command{
		Use:   "agentdev [task [KEY=value ...]]",
		Short: "Development task runner for the deep research agent project",
		Long: `agentdev orchestrates the development lifecycle of the Python agent
project: virtual environment creation, dependency management via uv,
browser automation setup, example runs, and test invocation. Run with no
arguments to see the task catalog.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(verbose || debug, jsonLogs, quiet)
		},
		RunE: runTask,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	// "help" is a task in the catalog; keep cobra's generated help command
	// out of the way so it reaches the dispatcher.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
}

func runTask(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.User.Errorf("configuration error: %v", err)
		return &exitError{code: 1, err: err}
	}

	taskName, paramArgs := splitTaskArgs(args)
	provided, err := parseParams(paramArgs)
	if err != nil {
		logger.User.Error(err.Error())
		return &exitError{code: 1, err: err}
	}

	reg := catalog.Build(cfg)
	d := dispatcher.New(reg, execx.NewLocal())

	code, runErr := d.Run(cmd.Context(), taskName, provided)
	if code != 0 {
		return &exitError{code: code, err: runErr}
	}
	return nil
}

// exitError carries the process exit code through cobra back to main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return "task failed"
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode extracts the exit code for main. Errors that did not come from
// the dispatcher (cobra flag errors and the like) map to 1.
func ExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
