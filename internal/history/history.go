// Package history keeps the list of past conversions.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"
)

// MaxItems is the default number of conversions kept.
const MaxItems = 20

// Item is one remembered conversion input.
type Item struct {
	ID        int       `json:"id"`
	InputText string    `json:"inputText"`
	Timestamp time.Time `json:"timestamp"`
	Hash      string    `json:"hash"` // SHA-256 hex of the trimmed input
}

// AddResult is the outcome of Add.
type AddResult struct {
	Items       []Item
	DuplicateID int // ID of the existing item holding the same text, 0 if the text was new
}

// Hash returns the SHA-256 hex digest of the trimmed text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}

// Add prepends text to items unless it is blank or already present anywhere in
// the list. New IDs are one more than the largest existing ID. The result holds
// at most limit items; the oldest are dropped. A limit below 1 means MaxItems.
func Add(items []Item, text string, limit int, now time.Time) AddResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return AddResult{Items: items}
	}
	if limit < 1 {
		limit = MaxItems
	}

	hash := Hash(trimmed)
	for _, it := range items {
		if it.Hash == hash {
			return AddResult{Items: items, DuplicateID: it.ID}
		}
	}

	nextID := 1
	for _, it := range items {
		if it.ID >= nextID {
			nextID = it.ID + 1
		}
	}

	out := make([]Item, 0, min(len(items)+1, limit))
	out = append(out, Item{
		ID:        nextID,
		InputText: trimmed,
		Timestamp: now,
		Hash:      hash,
	})
	for _, it := range items {
		if len(out) == limit {
			break
		}
		out = append(out, it)
	}
	return AddResult{Items: out}
}

// Remove returns items without the entry with the given ID.
func Remove(items []Item, id int) []Item {
	return slices.DeleteFunc(slices.Clone(items), func(it Item) bool {
		return it.ID == id
	})
}

// Find returns the item with the given ID.
func Find(items []Item, id int) (Item, bool) {
	i := slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return Item{}, false
	}
	return items[i], true
}
