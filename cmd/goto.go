package cmd

import "github.com/spf13/cobra"

var gotoCmd = &cobra.Command{
	Use:   "goto",
	Short: "Focus a marked window",
	Long:  "Prompt for a mark and focus the window carrying exactly that mark. With --prefix only marks starting with the prefix are offered.",
	Args:  noArgs,
	RunE:  sessionRunE((*session).gotoWindow),
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}
