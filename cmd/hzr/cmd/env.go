package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/f3rmion/hzr/internal/config"
	"github.com/f3rmion/hzr/internal/dict"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/spf13/viper"
)

// environment holds what the commands share: configuration, lookup and history.
type environment struct {
	dir     string
	cfg     *config.Config
	parser  *pinyin.Parser
	dict    *dict.Dictionary
	history *history.Manager
}

// loadEnvironment reads the configuration and builds the lookup. History is
// opened only when withHistory is set.
func loadEnvironment(ctx context.Context, withHistory bool) (*environment, error) {
	dir, err := config.EnsureConfigDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, err
	}

	env := &environment{dir: dir, cfg: cfg}

	zhuyin := pinyin.DefaultDictionary()
	if cfg.ZhuyinOverrides != "" {
		if err := zhuyin.LoadFile(config.Resolve(dir, cfg.ZhuyinOverrides)); err != nil {
			return nil, err
		}
	}
	env.parser = pinyin.NewParser(zhuyin)

	env.dict = loadDictionary(dir, cfg.Dictionary)
	if cfg.LookupSource == config.SourceDictionary {
		if env.dict == nil {
			fmt.Fprintf(os.Stderr, "Warning: lookup_source is %q but no dictionary was loaded\n", config.SourceDictionary)
		} else {
			env.parser.WithSource(env.dict)
		}
	}

	if withHistory {
		env.history = openHistory(ctx, dir, cfg)
	}

	return env, nil
}

// loadConfig reads config.yaml and applies flag and environment overrides.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	if viper.IsSet("mode") && viper.GetString("mode") != "" {
		cfg.Mode = pinyin.Mode(viper.GetString("mode"))
	}
	if viper.IsSet("tone") && viper.GetString("tone") != "" {
		cfg.ToneDisplay = pinyin.ToneDisplay(viper.GetString("tone"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDictionary loads the configured dictionary, or the first default one
// found. It returns nil when none is available.
func loadDictionary(dir, configured string) *dict.Dictionary {
	paths := []string{
		filepath.Join(dir, "dictionary.txt"),
		"data/dictionary.txt",
	}
	if configured != "" {
		paths = []string{config.Resolve(dir, configured)}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if configured != "" {
				fmt.Fprintf(os.Stderr, "Warning: Could not load dictionary: %v\n", err)
			}
			continue
		}

		d := dict.NewDictionary()
		if err := d.LoadFromFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not load dictionary: %v\n", err)
			return nil
		}
		slog.Debug("loaded dictionary", "path", path, "entries", d.Size())
		return d
	}
	return nil
}

// openHistory opens the SQLite history, falling back to memory on failure.
func openHistory(ctx context.Context, dir string, cfg *config.Config) *history.Manager {
	var store history.Store
	path := config.Resolve(dir, cfg.HistoryDB)
	if path != "" {
		sqlite, err := history.OpenSQLite(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not open history, it will not be saved: %v\n", err)
		} else {
			store = sqlite
		}
	}

	mgr := history.NewManager(store, cfg.HistoryLimit, slog.Default())
	mgr.Load(ctx)
	return mgr
}

// lookup returns the character lookup used for conversion.
func (e *environment) lookup() ruby.Lookup {
	return e.parser.Lookup
}

// Close releases the history store.
func (e *environment) Close() error {
	if e.history == nil {
		return nil
	}
	if err := e.history.Close(); err != nil {
		return fmt.Errorf("closing history: %w", err)
	}
	return nil
}
