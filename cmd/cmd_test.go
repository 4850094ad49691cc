package cmd

import (
	"bytes"
	"testing"

	"github.com/mj1618/i3-rofi-mark/internal/config"
	"github.com/mj1618/i3-rofi-mark/internal/platform"
	"github.com/mj1618/i3-rofi-mark/internal/platform/dmenu"
	"github.com/mj1618/i3-rofi-mark/internal/platform/i3"
	"github.com/mj1618/i3-rofi-mark/internal/runner/runnertest"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag on the command tree to its default so
// executions of the shared rootCmd do not leak state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset flag %s: %v", f.Name, err)
		}
		f.Changed = false
	}
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.PersistentFlags().VisitAll(reset)
		c.Flags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// execute runs rootCmd with args against fake, returning captured
// stdout and stderr.
func execute(t *testing.T, fake *runnertest.Fake, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)

	orig := newProvider
	newProvider = func(cfg config.Config, log zerolog.Logger) (*platform.Provider, error) {
		return platform.NewProvider(
			i3.NewClient(cfg.WM.Command, fake),
			dmenu.NewPicker(cfg.Picker.Command, cfg.Picker.Args, cfg.Picker.PromptFlag, fake),
		)
	}
	t.Cleanup(func() { newProvider = orig })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func getMarksCall(wm string) runnertest.Call {
	return runnertest.Call{Name: wm, Args: []string{"-t", "get_marks"}}
}

func commandCall(wm, instruction string) runnertest.Call {
	return runnertest.Call{Name: wm, Args: []string{"-t", "command", instruction}}
}

func pickerCall(title, stdin string) runnertest.Call {
	return runnertest.Call{Name: "rofi", Args: []string{"-dmenu", "-p", title}, Stdin: stdin}
}
