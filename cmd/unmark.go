package cmd

import "github.com/spf13/cobra"

var unmarkCmd = &cobra.Command{
	Use:   "unmark",
	Short: "Remove a window mark",
	Long: `Prompt for a mark to remove. Choosing "(Remove All)" clears every mark,
unless --prefix is set: the prefix is then prepended to the empty choice
and only the mark equal to the prefix itself is removed.`,
	Args: noArgs,
	RunE: sessionRunE((*session).unmarkWindow),
}

func init() {
	rootCmd.AddCommand(unmarkCmd)
}
