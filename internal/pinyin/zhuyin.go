package pinyin

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed zhuyin.yaml
var zhuyinYAML []byte

// Dictionary maps base pinyin syllables (lowercase, no tone marks) to Zhuyin.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]string)}
}

// DefaultDictionary returns a dictionary holding the built-in syllable table.
func DefaultDictionary() *Dictionary {
	d := NewDictionary()
	if err := d.merge(zhuyinYAML); err != nil {
		panic(fmt.Sprintf("pinyin: embedded zhuyin table: %v", err))
	}
	return d
}

// LoadFile merges entries from a YAML file of `syllable: zhuyin` pairs.
// Entries from the file replace built-in ones with the same key.
func (d *Dictionary) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading zhuyin file: %w", err)
	}
	if err := d.merge(data); err != nil {
		return fmt.Errorf("parsing zhuyin file: %w", err)
	}
	return nil
}

func (d *Dictionary) merge(data []byte) error {
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return err
	}
	for k, v := range table {
		d.entries[strings.ToLower(k)] = v
	}
	return nil
}

// Lookup returns the Zhuyin for a base syllable. The key is case-insensitive.
func (d *Dictionary) Lookup(syllable string) (string, bool) {
	if d == nil {
		return "", false
	}
	z, ok := d.entries[strings.ToLower(syllable)]
	return z, ok
}

// Size returns the number of syllables in the dictionary.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// ZhuyinBase converts tone-marked pinyin to untoned Zhuyin. When the syllable
// is unknown the lowercased, tone-stripped pinyin is returned instead.
func ZhuyinBase(pinyin string, dict *Dictionary) string {
	if pinyin == "" {
		return ""
	}
	base := strings.ToLower(StripToneMarks(pinyin))
	if z, ok := dict.Lookup(base); ok {
		return z
	}
	return base
}
