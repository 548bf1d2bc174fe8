package ruby

import (
	"strings"

	"github.com/f3rmion/hzr/internal/pinyin"
)

// Token is either one Chinese character with its readings or a run of
// non-Chinese text.
type Token struct {
	Text      string           `json:"text"`
	Annotated bool             `json:"annotated"`
	Variants  []pinyin.Variant `json:"variants,omitempty"`
	Active    int              `json:"active"` // Index into Variants of the displayed reading
}

// ActiveVariant returns the displayed reading. Unannotated tokens return the zero value.
func (t Token) ActiveVariant() pinyin.Variant {
	if t.Active < 0 || t.Active >= len(t.Variants) {
		return pinyin.Variant{}
	}
	return t.Variants[t.Active]
}

// ActivePinyin returns the tone-marked pinyin of the displayed reading.
func (t Token) ActivePinyin() string {
	return t.ActiveVariant().Pinyin
}

// ActiveZhuyin returns the untoned Zhuyin of the displayed reading.
func (t Token) ActiveZhuyin() string {
	return t.ActiveVariant().Zhuyin
}

// Polyphonic reports whether the token has more than one reading to choose from.
func (t Token) Polyphonic() bool {
	return len(t.Variants) > 1
}

// Reading renders the displayed reading in the given mode.
func (t Token) Reading(mode pinyin.Mode, display pinyin.ToneDisplay) string {
	if !t.Annotated {
		return ""
	}
	return pinyin.Format(t.ActiveVariant(), mode, display)
}

// Tokens is the ordered result of one conversion.
type Tokens []Token

// Text concatenates the text of every token, reproducing the converted input.
func (ts Tokens) Text() string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Annotated returns the number of annotated tokens.
func (ts Tokens) Annotated() int {
	n := 0
	for _, t := range ts {
		if t.Annotated {
			n++
		}
	}
	return n
}

// SelectVariant returns tokens with the reading at variantIndex made active on
// the token at tokenIndex. Out-of-range indices return tokens unchanged.
// The input slice is never modified.
func SelectVariant(tokens Tokens, tokenIndex, variantIndex int) Tokens {
	if tokenIndex < 0 || tokenIndex >= len(tokens) {
		return tokens
	}
	tok := tokens[tokenIndex]
	if variantIndex < 0 || variantIndex >= len(tok.Variants) || variantIndex == tok.Active {
		return tokens
	}

	out := make(Tokens, len(tokens))
	copy(out, tokens)
	tok.Active = variantIndex
	out[tokenIndex] = tok
	return out
}

// CycleVariant moves the active reading of one token by delta, wrapping around
// its variants.
func CycleVariant(tokens Tokens, tokenIndex, delta int) Tokens {
	if tokenIndex < 0 || tokenIndex >= len(tokens) {
		return tokens
	}
	n := len(tokens[tokenIndex].Variants)
	if n < 2 {
		return tokens
	}
	next := ((tokens[tokenIndex].Active+delta)%n + n) % n
	return SelectVariant(tokens, tokenIndex, next)
}

// AnnotatedText renders tokens as plain text with each reading in
// parentheses after its character, e.g. "你(nǐ)好(hǎo)".
func AnnotatedText(tokens Tokens, mode pinyin.Mode, display pinyin.ToneDisplay) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
		if r := t.Reading(mode, display); r != "" {
			b.WriteByte('(')
			b.WriteString(r)
			b.WriteByte(')')
		}
	}
	return b.String()
}
