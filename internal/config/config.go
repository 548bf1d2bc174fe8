// Package config handles loading and saving user configuration for hzr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/pinyin"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Lookup sources.
const (
	SourcePinyin     = "pinyin"     // go-pinyin readings
	SourceDictionary = "dictionary" // Make Me a Hanzi readings, go-pinyin for the rest
)

var (
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidToneDisplay = errors.New("invalid tone display")
	ErrInvalidSource      = errors.New("invalid lookup source")
)

// Config holds all user configuration.
type Config struct {
	Mode            pinyin.Mode        `yaml:"mode"`                       // pinyin or zhuyin
	ToneDisplay     pinyin.ToneDisplay `yaml:"tone_display"`               // mark or number
	HistoryLimit    int                `yaml:"history_limit"`              // Number of conversions remembered
	HistoryDB       string             `yaml:"history_db,omitempty"`       // SQLite file, relative to the config dir
	LookupSource    string             `yaml:"lookup_source"`              // pinyin or dictionary
	Dictionary      string             `yaml:"dictionary,omitempty"`       // Make Me a Hanzi dictionary.txt
	ZhuyinOverrides string             `yaml:"zhuyin_overrides,omitempty"` // YAML file of syllable: zhuyin pairs
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:         pinyin.ModePinyin,
		ToneDisplay:  pinyin.ToneMark,
		HistoryLimit: history.MaxItems,
		HistoryDB:    "history.db",
		LookupSource: SourcePinyin,
	}
}

// Load reads a configuration file on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks enumerated fields and normalises their spelling.
func (c *Config) Validate() error {
	mode, ok := pinyin.ParseMode(string(c.Mode))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	c.Mode = mode

	display, ok := pinyin.ParseToneDisplay(string(c.ToneDisplay))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidToneDisplay, c.ToneDisplay)
	}
	c.ToneDisplay = display

	switch c.LookupSource {
	case "":
		c.LookupSource = SourcePinyin
	case SourcePinyin, SourceDictionary:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSource, c.LookupSource)
	}

	if c.HistoryLimit < 1 {
		c.HistoryLimit = history.MaxItems
	}
	return nil
}

// Resolve returns path made absolute against dir. Empty stays empty.
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hzr"), nil
}

// EnsureConfigDir creates dir (the default directory when empty) if it doesn't exist.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = GetConfigDir(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return dir, nil
}
