package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/f3rmion/hzr/internal/history"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `List, delete or clear the conversions saved by the TUI and by
'hzr convert --save'.

Example:
  hzr history
  hzr history rm 3
  hzr history clear`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete one history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer env.Close()

	writeHistory(cmd.OutOrStdout(), env.history.Items(), time.Now())
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	env, err := loadEnvironment(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer env.Close()

	if _, ok := history.Find(env.history.Items(), id); !ok {
		return fmt.Errorf("no history entry #%d", id)
	}
	env.history.Remove(cmd.Context(), id)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer env.Close()

	env.history.Clear(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
	return nil
}

// writeHistory prints one entry per line, most recent first.
func writeHistory(w io.Writer, items []history.Item, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No conversions yet")
		return
	}
	for _, it := range items {
		text := strings.NewReplacer("\r\n", "⏎", "\n", "⏎").Replace(it.InputText)
		fmt.Fprintf(w, "%4d  %s  %s\n",
			it.ID,
			runewidth.FillRight(runewidth.Truncate(text, 40, "…"), 40),
			history.FormatTime(it.Timestamp, now))
	}
}
