package cmd

import "github.com/spf13/cobra"

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark the focused window",
	Long:  "Prompt for a mark (existing marks are offered) and attach it, prefixed when --prefix is set, to the focused window.",
	Args:  noArgs,
	RunE:  sessionRunE((*session).markWindow),
}

func init() {
	rootCmd.AddCommand(markCmd)
}
