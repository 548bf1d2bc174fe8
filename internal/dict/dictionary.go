// Package dict reads Make Me a Hanzi dictionary data.
package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Entry represents a single entry from the Make Me a Hanzi dictionary.
type Entry struct {
	Character  string   `json:"character"`
	Definition string   `json:"definition"`
	Pinyin     []string `json:"pinyin"` // Tone-marked readings in dictionary order
	Radical    string   `json:"radical"`
}

// Dictionary holds all character data.
type Dictionary struct {
	entries map[string]*Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]*Entry),
	}
}

// LoadFromFile loads a Make Me a Hanzi dictionary.txt file (one JSON object per line).
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	return d.Load(file)
}

// Load reads JSON lines from r. Malformed lines are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil || entry.Character == "" {
			continue
		}

		d.entries[entry.Character] = &entry
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary file: %w", err)
	}

	return nil
}

// Lookup returns the dictionary entry for a character.
func (d *Dictionary) Lookup(char string) *Entry {
	if d == nil {
		return nil
	}
	return d.entries[char]
}

// Readings returns the dictionary-ordered readings of a character.
func (d *Dictionary) Readings(char string) []string {
	if e := d.Lookup(char); e != nil {
		return e.Pinyin
	}
	return nil
}

// Definition returns the English gloss of a character, if known.
func (d *Dictionary) Definition(char string) string {
	if e := d.Lookup(char); e != nil {
		return e.Definition
	}
	return ""
}

// Size returns the number of entries in the dictionary.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
