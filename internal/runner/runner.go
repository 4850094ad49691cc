// Package runner executes the external programs the tool orchestrates.
// Callers depend on the Runner interface so tests can substitute a fake.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner abstracts external command execution.
type Runner interface {
	// Output runs name with args, writes stdin to the process when non-nil,
	// and returns what the process wrote to stdout. A non-zero exit yields
	// the captured stdout together with a *ProcessError.
	Output(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

	// Run runs name with args, discards stdout, and fails with a
	// *ProcessError unless the process exits zero.
	Run(ctx context.Context, name string, args ...string) error
}

// ProcessError reports an external process that could not be started or
// exited with a non-zero status.
type ProcessError struct {
	Command  []string
	ExitCode int // -1 when the process never started
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	cmdline := strings.Join(e.Command, " ")
	if !e.Exited() {
		return fmt.Sprintf("run %s: %v", cmdline, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s: exit status %d: %s", cmdline, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s: exit status %d", cmdline, e.ExitCode)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Exited reports whether the process ran and exited on its own.
func (e *ProcessError) Exited() bool { return e.ExitCode >= 0 }

// ExecRunner runs commands on the local host with os/exec.
type ExecRunner struct {
	Log zerolog.Logger
}

// NewExecRunner returns an ExecRunner that traces invocations to log.
func NewExecRunner(log zerolog.Logger) *ExecRunner {
	return &ExecRunner{Log: log}
}

func (r *ExecRunner) Output(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Log.Debug().Str("cmd", name).Strs("args", args).Int("stdin_bytes", len(stdin)).Msg("exec")
	err := cmd.Run()
	if err != nil {
		perr := newProcessError(name, args, stderr.String(), err)
		r.Log.Debug().Str("cmd", name).Int("exit", perr.ExitCode).Msg("exec failed")
		return stdout.Bytes(), perr
	}
	r.Log.Debug().Str("cmd", name).Int("stdout_bytes", stdout.Len()).Msg("exec done")
	return stdout.Bytes(), nil
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := r.Output(ctx, nil, name, args...)
	return err
}

func newProcessError(name string, args []string, stderr string, err error) *ProcessError {
	perr := &ProcessError{
		Command:  append([]string{name}, args...),
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
	}
	return perr
}
