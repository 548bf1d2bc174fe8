package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/f3rmion/hzr/internal/tui/components"
	"github.com/spf13/cobra"
)

// Output formats of the convert command.
const (
	formatRuby   = "ruby"
	formatInline = "inline"
)

var errUnknownFormat = errors.New("unknown format")

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Print text with readings above each character",
	Long: `Convert Chinese text and print it with its readings.

The ruby format prints each line as two rows, readings above characters.
The inline format puts each reading in parentheses after its character.
Text is read from standard input when no argument is given.

Example:
  hzr convert 你好，世界
  hzr convert --mode zhuyin --tone number 行人
  echo 中文 | hzr convert --format inline`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("format", formatRuby, "output format: ruby or inline")
	convertCmd.Flags().Int("width", 0, "wrap ruby output at this many columns (0 for no wrapping)")
	convertCmd.Flags().Bool("save", false, "record the text in history")
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	save, _ := cmd.Flags().GetBool("save")

	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	env, err := loadEnvironment(cmd.Context(), save)
	if err != nil {
		return err
	}
	defer env.Close()

	tokens := ruby.Convert(text, env.lookup())
	out, err := renderTokens(tokens, format, env.cfg.Mode, env.cfg.ToneDisplay, width)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if save {
		if id := env.history.Add(cmd.Context(), text); id != 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Already in history as #%d\n", id)
		}
	}
	return nil
}

// readInput joins args, or reads r when there are none.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// renderTokens formats a conversion for terminal output.
func renderTokens(tokens ruby.Tokens, format string, mode pinyin.Mode, display pinyin.ToneDisplay, width int) (string, error) {
	switch format {
	case formatRuby:
		return components.RenderRuby(ruby.SegmentLines(tokens), components.RubyOptions{
			Mode:        mode,
			ToneDisplay: display,
			Width:       width,
			Selected:    ruby.NoSelection,
		}), nil
	case formatInline:
		return ruby.AnnotatedText(tokens, mode, display), nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
