package i3

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/i3-rofi-mark/internal/runner"
)

// DefaultCommand is the IPC client used when none is configured.
const DefaultCommand = "i3-msg"

// QueryError reports a failed or unparseable get_marks query.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return "get marks: " + e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

// CommandError reports a window manager command that did not succeed.
type CommandError struct {
	Instruction string
	Err         error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("window manager command %q: %v", e.Instruction, e.Err)
}
func (e *CommandError) Unwrap() error { return e.Err }

// Client implements platform.WindowManager on top of an IPC client binary.
type Client struct {
	command string
	runner  runner.Runner
}

// NewClient returns a Client invoking command through r. An empty command
// selects DefaultCommand.
func NewClient(command string, r runner.Runner) *Client {
	if command == "" {
		command = DefaultCommand
	}
	return &Client{command: command, runner: r}
}

// Marks runs get_marks and decodes its JSON array of strings.
func (c *Client) Marks(ctx context.Context) ([]string, error) {
	out, err := c.runner.Output(ctx, nil, c.command, "-t", "get_marks")
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	if !utf8.Valid(out) {
		return nil, &QueryError{Err: fmt.Errorf("%s output is not valid UTF-8", c.command)}
	}
	var marks []string
	if err := json.Unmarshal(out, &marks); err != nil {
		return nil, &QueryError{Err: fmt.Errorf("decode %s output: %w", c.command, err)}
	}
	if marks == nil {
		marks = []string{}
	}
	return marks, nil
}

func (c *Client) Mark(ctx context.Context, name string) error {
	return c.exec(ctx, "mark "+quote(name))
}

func (c *Client) Focus(ctx context.Context, name string) error {
	return c.exec(ctx, fmt.Sprintf(`[con_mark=%s] focus`, quote("^"+regexp.QuoteMeta(name)+"$")))
}

// Unmark removes name; the empty name issues a bare unmark, which clears
// every mark in the session.
func (c *Client) Unmark(ctx context.Context, name string) error {
	if name == "" {
		return c.exec(ctx, "unmark")
	}
	return c.exec(ctx, "unmark "+quote(name))
}

func (c *Client) exec(ctx context.Context, instruction string) error {
	if err := c.runner.Run(ctx, c.command, "-t", "command", instruction); err != nil {
		return &CommandError{Instruction: instruction, Err: err}
	}
	return nil
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a double-quoted i3 command argument.
func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
