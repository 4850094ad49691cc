package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/i3-rofi-mark/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "i3-rofi-mark",
	Short: "Mark, unmark and jump to windows through a picker",
	Long: `Mark the focused window, jump to a marked window, or remove marks in an
i3 (or sway) session, choosing marks through rofi or another dmenu-style picker.

With --prefix, goto and unmark only offer marks starting with the prefix
(shown without it) and every mark written is prefixed.`,
	Args:          rejectUnknownCommand,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// UsageError reports a missing or unrecognized command or flag.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

func runRoot(cmd *cobra.Command, args []string) error {
	return usageErrorf("a command is required: mark, goto, unmark, or list")
}

func rejectUnknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unknown command %q (use mark, goto, unmark, or list)", args[0])
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.Name(), args[0])
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure: 2 for usage
// errors, 1 for everything else.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().Bool("debug", false, "Include debug output (to stderr)")
	rootCmd.PersistentFlags().String("prefix", "", "Show or add this prefix")
	rootCmd.PersistentFlags().String("config", "", "YAML config file selecting the window manager client and picker")
	rootCmd.PersistentFlags().String("wm-cmd", "", "Window manager IPC client (default i3-msg)")
	rootCmd.PersistentFlags().String("picker-cmd", "", "dmenu-compatible picker (default rofi)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})
}
