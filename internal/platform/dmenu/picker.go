// Package dmenu implements platform.Chooser over the dmenu protocol:
// choices go to the picker's stdin one per line and the selected or typed
// line comes back on stdout. rofi -dmenu, dmenu, wofi --dmenu and fuzzel
// --dmenu all speak it.
package dmenu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/i3-rofi-mark/internal/platform"
	"github.com/mj1618/i3-rofi-mark/internal/runner"
)

// Picker runs an external dmenu-style program.
type Picker struct {
	Command    string
	Args       []string // Arguments placed before the prompt flag
	PromptFlag string   // Flag that introduces the prompt title; empty omits the title
	runner     runner.Runner
}

// NewPicker returns a Picker invoking command with args through r.
func NewPicker(command string, args []string, promptFlag string, r runner.Runner) *Picker {
	return &Picker{Command: command, Args: args, PromptFlag: promptFlag, runner: r}
}

// Prompt shows opts.Choices and returns the user's reply, mapped through
// opts.Values when the reply is one of the offered choices.
func (p *Picker) Prompt(ctx context.Context, opts platform.PromptOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	out, err := p.runner.Output(ctx, []byte(strings.Join(opts.Choices, "\n")), p.Command, p.argv(opts.Title)...)
	var perr *runner.ProcessError
	if err != nil {
		// rofi and dmenu exit non-zero when dismissed; only a picker that
		// never ran is fatal here.
		if !errors.As(err, &perr) || !perr.Exited() {
			return "", err
		}
	}
	reply, err := opts.Resolve(firstLine(out))
	if err != nil && perr != nil && perr.Stderr != "" {
		// keep the picker's own diagnostic, e.g. rofi failing to open a display
		return "", fmt.Errorf("%w: %v", err, perr)
	}
	return reply, err
}

func (p *Picker) argv(title string) []string {
	args := append([]string(nil), p.Args...)
	if p.PromptFlag != "" {
		args = append(args, p.PromptFlag, title)
	}
	return args
}

func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
