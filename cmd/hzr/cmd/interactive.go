package cmd

import "github.com/spf13/cobra"

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI. This is the same as running 'hzr'
without a command.

Controls:
  Enter        Convert the input (alt+enter for a new line)
  Esc          Leave the input
  → . >  ← , < Move between characters
  ↓ ↑          Move between phrases
  Enter        Choose the reading of a character with several
  m / t        Toggle pinyin/zhuyin and tone marks/numbers
  y            Copy the annotated text`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
