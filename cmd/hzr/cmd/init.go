package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/hzr/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hzr configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

Settings:
  mode              pinyin or zhuyin
  tone_display      mark or number
  history_limit     number of conversions remembered
  history_db        SQLite file for history, relative to the config directory
  lookup_source     pinyin, or dictionary to prefer readings from a
                    Make Me a Hanzi dictionary.txt
  dictionary        path to dictionary.txt
  zhuyin_overrides  YAML file of "syllable: zhuyin" pairs`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return err
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to choose pinyin or zhuyin and how tones are shown")
	fmt.Fprintln(out, "  2. Run 'hzr convert 你好' to test a conversion")
	fmt.Fprintln(out, "  3. Run 'hzr' to open the interactive TUI")

	return nil
}
