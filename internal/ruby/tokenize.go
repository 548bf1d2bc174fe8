package ruby

import (
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/hzr/internal/pinyin"
)

// Lookup returns the readings of a single character, default reading first.
type Lookup func(char string) []pinyin.Variant

// TableLookup serves readings from a pre-resolved table.
func TableLookup(table map[string][]pinyin.Variant) Lookup {
	return func(char string) []pinyin.Variant {
		return table[char]
	}
}

// Tokenize splits text into one annotated token per Chinese character and one
// unannotated token per maximal run of other text. Concatenating the tokens'
// text gives back the input.
func Tokenize(text string, lookup Lookup) Tokens {
	if text == "" {
		return nil
	}

	var tokens Tokens
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if IsChineseCharacter(r) {
			char := text[i : i+size]
			tokens = append(tokens, Token{
				Text:      char,
				Annotated: true,
				Variants:  readings(lookup, char),
			})
			i += size
			continue
		}

		// Group consecutive non-Chinese characters
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if IsChineseCharacter(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, Token{Text: text[start:i]})
	}

	return tokens
}

// Convert tokenizes text for display. Blank input yields no tokens.
func Convert(text string, lookup Lookup) Tokens {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return Tokenize(text, lookup)
}

// readings always returns at least one variant so annotated tokens keep the
// Annotated == len(Variants) > 0 invariant.
func readings(lookup Lookup, char string) []pinyin.Variant {
	var variants []pinyin.Variant
	if lookup != nil {
		variants = lookup(char)
	}
	if len(variants) == 0 {
		return []pinyin.Variant{{}}
	}
	out := make([]pinyin.Variant, len(variants))
	copy(out, variants)
	return out
}
