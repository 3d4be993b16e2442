// Package execx runs delegated external tools. The dispatcher only ever
// talks to the Runner interface so tests can substitute a recording fake.
package execx

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/deepresearch/agentdev/internal/logger"
)

// Result carries the exit code of a finished subprocess along with the
// raw error from os/exec, if any.
type Result struct {
	Code int
	Err  error
}

// Runner executes a single external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// Local runs commands on the host, streaming stdio, in the caller's
// working directory and environment.
type Local struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLocal returns a Local wired to the process's own stdio.
func NewLocal() *Local {
	return &Local{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the command and blocks until it exits. SIGINT and SIGTERM
// received while the command runs are forwarded to it; if the command dies
// to a signal the result code is 128 plus the signal number, matching
// shell convention.
func (l *Local) Run(ctx context.Context, name string, args ...string) Result {
	logger.Op.Debugf("+ %s", strings.Join(append([]string{name}, args...), " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return Result{Code: 1, Err: err}
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigc:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	signal.Stop(sigc)

	return Result{Code: exitCode(err), Err: err}
}

// exitCode maps a Wait error to the code the shell would report.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return ee.ExitCode()
	}
	return 1
}

var _ Runner = (*Local)(nil)
