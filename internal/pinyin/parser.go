// Package pinyin handles pinyin readings, tone conversion and Zhuyin mapping.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Mode selects which phonetic script is shown above a character.
type Mode string

const (
	ModePinyin Mode = "pinyin"
	ModeZhuyin Mode = "zhuyin"
)

// ParseMode parses "pinyin" or "zhuyin". Anything else is reported as not ok.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePinyin:
		return ModePinyin, true
	case ModeZhuyin:
		return ModeZhuyin, true
	}
	return ModePinyin, false
}

// Variant is one reading of a character.
type Variant struct {
	Pinyin string `json:"pinyin"` // Tone-marked pinyin (e.g., "hǎo")
	Zhuyin string `json:"zhuyin"` // Zhuyin without tone mark (e.g., "ㄏㄠ")
}

// ReadingSource supplies tone-marked readings for a character, default first.
// An empty result defers to go-pinyin.
type ReadingSource interface {
	Readings(char string) []string
}

// Parser looks up readings of single characters.
type Parser struct {
	args    gopinyin.Args
	zhuyin  *Dictionary
	sources []ReadingSource
}

// NewParser creates a parser backed by go-pinyin and the given Zhuyin
// dictionary. A nil dictionary selects the built-in table.
func NewParser(zhuyin *Dictionary) *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	if zhuyin == nil {
		zhuyin = DefaultDictionary()
	}
	return &Parser{args: args, zhuyin: zhuyin}
}

// WithSource adds a reading source consulted before go-pinyin.
func (p *Parser) WithSource(src ReadingSource) *Parser {
	if src != nil {
		p.sources = append(p.sources, src)
	}
	return p
}

// Zhuyin returns the dictionary used for Zhuyin conversion.
func (p *Parser) Zhuyin() *Dictionary {
	return p.zhuyin
}

// GetPinyin returns all tone-marked readings for a character, default first.
func (p *Parser) GetPinyin(char string) []string {
	for _, src := range p.sources {
		if readings := dedupe(src.Readings(char)); len(readings) > 0 {
			return readings
		}
	}

	result := gopinyin.Pinyin(char, p.args)
	if len(result) == 0 {
		return nil
	}
	return dedupe(result[0])
}

// Variants builds the variants for a list of tone-marked readings.
func (p *Parser) Variants(readings []string) []Variant {
	if len(readings) == 0 {
		return nil
	}
	variants := make([]Variant, 0, len(readings))
	for _, r := range dedupe(readings) {
		variants = append(variants, Variant{Pinyin: r, Zhuyin: ZhuyinBase(r, p.zhuyin)})
	}
	return variants
}

// Lookup returns every reading of a character as variants, default first.
// Characters go-pinyin does not know yield nil.
func (p *Parser) Lookup(char string) []Variant {
	return p.Variants(p.GetPinyin(char))
}

func dedupe(readings []string) []string {
	seen := make(map[string]bool, len(readings))
	out := make([]string, 0, len(readings))
	for _, r := range readings {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
