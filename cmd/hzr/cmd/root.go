// Package cmd contains all CLI commands for the hzr tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/hzr/internal/config"
	"github.com/f3rmion/hzr/internal/tui"
	"github.com/f3rmion/hzr/internal/tui/bigchar"
	"github.com/f3rmion/hzr/internal/tui/views"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hzr",
	Short: "Annotate Chinese text with pinyin or zhuyin ruby",
	Long: `hzr annotates Chinese text with phonetic readings shown above each
character, in pinyin or zhuyin (bopomofo), with tone marks or tone numbers.

Characters with several readings can be switched to the right one, and
recent conversions are kept in a history.

Running 'hzr' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/hzr)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("mode", "", "reading system: pinyin or zhuyin")
	rootCmd.PersistentFlags().String("tone", "", "tone display: mark or number")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("tone", rootCmd.PersistentFlags().Lookup("tone"))
}

// initConfig reads in ENV variables and sets up logging.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("HZR")
	viper.AutomaticEnv()

	setupLogging(os.Stderr)
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setupLogging installs the default slog logger writing to w.
func setupLogging(w io.Writer) {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// runTUI launches the unified TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return err
	}

	// The TUI owns the terminal; send logs to a file instead.
	logFile, err := os.OpenFile(filepath.Join(dir, "hzr.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open log file: %v\n", err)
		setupLogging(io.Discard)
	} else {
		defer logFile.Close()
		setupLogging(logFile)
	}

	env, err := loadEnvironment(ctx, true)
	if err != nil {
		return err
	}
	defer env.Close()

	slog.Debug("starting tui", "config_dir", env.dir, "mode", env.cfg.Mode, "tone", env.cfg.ToneDisplay)

	opts := views.ConvertOptions{
		Lookup:      env.lookup(),
		Glyphs:      bigchar.New(),
		Mode:        env.cfg.Mode,
		ToneDisplay: env.cfg.ToneDisplay,
	}
	if env.dict != nil {
		opts.Definitions = env.dict
	}

	p := tea.NewProgram(
		tui.NewApp(ctx, opts, env.history),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
