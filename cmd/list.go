package cmd

import (
	"github.com/mj1618/i3-rofi-mark/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List window marks",
	Long:  "Print the current marks without prompting. With --prefix only marks starting with the prefix are listed, with the prefix removed.",
	Args:  noArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("format", string(output.FormatYAML), "Output format: yaml, json")
}

func runList(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return usageErrorf("%v", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	marks, err := s.prefixedMarks(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), format, output.MarksResult{
		Prefix: s.prefix,
		Marks:  marks,
	})
}
