package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive brand monitoring page.

Features:
  - Type a brand name and press Enter to search
  - See mentions and sentiment counts as readouts and a bar chart
  - Copy the result summary to the clipboard

Controls:
  Enter   Search
  Ctrl+Y  Copy result
  Esc     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
