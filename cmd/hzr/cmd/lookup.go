package cmd

import (
	"fmt"
	"io"

	"github.com/f3rmion/hzr/internal/dict"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <characters>",
	Short: "List every reading of each character",
	Long: `Look up Chinese characters and display, for each one:
  - every pinyin reading, default first
  - the reading with a tone number
  - the zhuyin spelling
  - the meaning, when a dictionary is available

Example:
  hzr lookup 好
  hzr lookup 行长`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context(), false)
	if err != nil {
		return err
	}

	for _, arg := range args {
		writeLookup(cmd.OutOrStdout(), arg, env.parser.Lookup, env.dict, env.cfg.ToneDisplay)
	}
	return nil
}

// writeLookup prints the readings of every Chinese character in input.
func writeLookup(w io.Writer, input string, lookup ruby.Lookup, d *dict.Dictionary, display pinyin.ToneDisplay) {
	found := false
	for _, r := range input {
		char := string(r)
		if !ruby.IsChineseString(char) {
			continue
		}
		found = true

		fmt.Fprintf(w, "Character: %s\n", char)
		if def := d.Definition(char); def != "" {
			fmt.Fprintf(w, "  Meaning: %s\n", def)
		}
		if entry := d.Lookup(char); entry != nil && entry.Radical != "" {
			fmt.Fprintf(w, "  Radical: %s\n", entry.Radical)
		}

		variants := lookup(char)
		if len(variants) == 0 {
			fmt.Fprintf(w, "  Pinyin: (not found)\n\n")
			continue
		}
		for i, v := range variants {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %-8s %-8s %s\n",
				marker,
				v.Pinyin,
				pinyin.ToNumbered(v.Pinyin),
				pinyin.ApplyToneToZhuyin(v.Zhuyin, v.Pinyin, display))
		}
		fmt.Fprintln(w)
	}

	if !found {
		fmt.Fprintf(w, "No Chinese characters found in: %s\n", input)
	}
}
