// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"

	"github.com/mj1618/i3-rofi-mark/internal/runner"
)

// Call records one invocation made through the Fake.
type Call struct {
	Name  string
	Args  []string
	Stdin string
}

// Result is the scripted outcome of one invocation.
type Result struct {
	Stdout   string
	Stderr   string // reported on the *runner.ProcessError of a non-zero exit
	ExitCode int    // non-zero produces a *runner.ProcessError
	StartErr error
}

// Fake replays Results in order and records every Call. Once the script is
// exhausted each call succeeds with empty output.
type Fake struct {
	Calls   []Call
	Results []Result
}

// New returns a Fake that replays results.
func New(results ...Result) *Fake {
	return &Fake{Results: results}
}

func (f *Fake) Output(_ context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...), Stdin: string(stdin)})
	if len(f.Results) == 0 {
		return nil, nil
	}
	res := f.Results[0]
	f.Results = f.Results[1:]

	cmdline := append([]string{name}, args...)
	if res.StartErr != nil {
		return nil, &runner.ProcessError{Command: cmdline, ExitCode: -1, Err: res.StartErr}
	}
	if res.ExitCode != 0 {
		return []byte(res.Stdout), &runner.ProcessError{
			Command:  cmdline,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      fmt.Errorf("exit status %d", res.ExitCode),
		}
	}
	return []byte(res.Stdout), nil
}

func (f *Fake) Run(ctx context.Context, name string, args ...string) error {
	_, err := f.Output(ctx, nil, name, args...)
	return err
}
