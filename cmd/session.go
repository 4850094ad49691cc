package cmd

import (
	"context"
	"fmt"

	"github.com/mj1618/i3-rofi-mark/internal/config"
	"github.com/mj1618/i3-rofi-mark/internal/logging"
	"github.com/mj1618/i3-rofi-mark/internal/model"
	"github.com/mj1618/i3-rofi-mark/internal/platform"
	"github.com/mj1618/i3-rofi-mark/internal/platform/dmenu"
	"github.com/mj1618/i3-rofi-mark/internal/platform/i3"
	"github.com/mj1618/i3-rofi-mark/internal/runner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newProvider wires the configured backends. Tests replace it to run the
// commands against a scripted runner.
var newProvider = func(cfg config.Config, log zerolog.Logger) (*platform.Provider, error) {
	r := runner.NewExecRunner(log)
	return platform.NewProvider(
		i3.NewClient(cfg.WM.Command, r),
		dmenu.NewPicker(cfg.Picker.Command, cfg.Picker.Args, cfg.Picker.PromptFlag, r),
	)
}

// session carries what one command invocation needs.
type session struct {
	provider *platform.Provider
	prefix   string
	log      zerolog.Logger
}

// newSession resolves config and flags for cmd and builds its backends.
func newSession(cmd *cobra.Command) (*session, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	log := logging.New(cmd.ErrOrStderr(), cmd.Root().Name(), debug)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("wm", cfg.WM.Command).Str("picker", cfg.Picker.Command).Str("prefix", cfg.Prefix).Msg("config")

	provider, err := newProvider(cfg, log)
	if err != nil {
		return nil, err
	}
	return &session{provider: provider, prefix: cfg.Prefix, log: log}, nil
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Prefix, _ = cmd.Flags().GetString("prefix")
	}
	if wm, _ := cmd.Flags().GetString("wm-cmd"); wm != "" {
		cfg.WM.Command = wm
	}
	if picker, _ := cmd.Flags().GetString("picker-cmd"); picker != "" {
		cfg.Picker.Command = picker
	}
	return cfg, cfg.Validate()
}

// marks queries the window manager once.
func (s *session) marks(ctx context.Context) ([]string, error) {
	marks, err := s.provider.WindowManager.Marks(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Strs("marks", marks).Msg("queried marks")
	return marks, nil
}

// prefixedMarks returns the marks carrying the session prefix, stripped.
func (s *session) prefixedMarks(ctx context.Context) ([]string, error) {
	marks, err := s.marks(ctx)
	if err != nil {
		return nil, err
	}
	if s.prefix != "" {
		marks = model.FilterByPrefix(marks, s.prefix)
		s.log.Debug().Str("prefix", s.prefix).Strs("marks", marks).Msg("filtered marks")
	}
	return marks, nil
}

func (s *session) prompt(ctx context.Context, opts platform.PromptOptions) (string, error) {
	reply, err := s.provider.Chooser.Prompt(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Title, err)
	}
	s.log.Debug().Str("title", opts.Title).Str("reply", reply).Msg("picker reply")
	return reply, nil
}

// markWindow offers every existing mark and marks the focused window with
// the reply.
func (s *session) markWindow(ctx context.Context) error {
	marks, err := s.marks(ctx)
	if err != nil {
		return err
	}
	reply, err := s.prompt(ctx, platform.PromptOptions{
		Title:           "Mark Window",
		Choices:         marks,
		RequireNonEmpty: true,
	})
	if err != nil {
		return err
	}
	mark := model.ApplyPrefix(s.prefix, reply)
	s.log.Debug().Str("mark", mark).Msg("marking window")
	return s.provider.WindowManager.Mark(ctx, mark)
}

// gotoWindow focuses the window carrying the chosen mark.
func (s *session) gotoWindow(ctx context.Context) error {
	marks, err := s.prefixedMarks(ctx)
	if err != nil {
		return err
	}
	reply, err := s.prompt(ctx, platform.PromptOptions{
		Title:           "Goto",
		Choices:         marks,
		RequireNonEmpty: true,
	})
	if err != nil {
		return err
	}
	mark := model.ApplyPrefix(s.prefix, reply)
	s.log.Debug().Str("mark", mark).Msg("selecting window")
	return s.provider.WindowManager.Focus(ctx, mark)
}

// unmarkWindow removes the chosen mark. With a prefix set the prefix is
// prepended even to the "(Remove All)" value, so that choice unmarks the
// literal prefix instead of clearing every mark.
func (s *session) unmarkWindow(ctx context.Context) error {
	marks, err := s.prefixedMarks(ctx)
	if err != nil {
		return err
	}
	choices, values := model.UnmarkChoices(marks)
	reply, err := s.prompt(ctx, platform.PromptOptions{
		Title:           "Remove Mark",
		Choices:         choices,
		Values:          values,
		RequireNonEmpty: true,
	})
	if err != nil {
		return err
	}
	mark := model.ApplyPrefix(s.prefix, reply)
	s.log.Debug().Str("mark", mark).Msg("removing mark")
	return s.provider.WindowManager.Unmark(ctx, mark)
}

// sessionRunE adapts a session step to a cobra RunE.
func sessionRunE(step func(*session, context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return step(s, cmd.Context())
	}
}
