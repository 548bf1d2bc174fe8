package pinyin

import (
	"strconv"
	"strings"
)

// Tone represents the four tones of Mandarin plus neutral tone.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // First tone (high level) - ˉ
	Tone2       Tone = 2 // Second tone (rising) - ˊ
	Tone3       Tone = 3 // Third tone (dipping) - ˇ
	Tone4       Tone = 4 // Fourth tone (falling) - ˋ
	Tone5       Tone = 5 // Fifth tone (neutral)
)

// ToneDisplay selects how a tone is rendered next to a reading.
type ToneDisplay string

const (
	ToneMark   ToneDisplay = "mark"
	ToneNumber ToneDisplay = "number"
)

// ParseToneDisplay parses "mark" or "number". Anything else is reported as not ok.
func ParseToneDisplay(s string) (ToneDisplay, bool) {
	switch ToneDisplay(strings.ToLower(strings.TrimSpace(s))) {
	case ToneMark:
		return ToneMark, true
	case ToneNumber:
		return ToneNumber, true
	}
	return ToneMark, false
}

type toneMark struct {
	base rune
	tone Tone
}

// toneMarks maps every toned vowel (and syllabic n) to its base and tone.
var toneMarks = map[rune]toneMark{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
	'ń': {'n', Tone2}, 'ň': {'n', Tone3}, 'ǹ': {'n', Tone4},
}

// zhuyinToneMarks is indexed by tone. Tone 1 carries no mark.
var zhuyinToneMarks = [...]string{
	ToneUnknown: "",
	Tone1:       "",
	Tone2:       "ˊ",
	Tone3:       "ˇ",
	Tone4:       "ˋ",
	Tone5:       "˙",
}

// ToneMarkToBase returns the base letter and tone of a toned glyph.
// Untoned runes come back unchanged with ok set to false.
func ToneMarkToBase(r rune) (base rune, tone Tone, ok bool) {
	if m, found := toneMarks[r]; found {
		return m.base, m.tone, true
	}
	return r, ToneUnknown, false
}

// extractTone strips tone marks and reports the tone of the last toned glyph.
// Input without any toned glyph is neutral (Tone5).
func extractTone(pinyin string) (Tone, string) {
	tone := ToneUnknown
	var result strings.Builder
	result.Grow(len(pinyin))

	for _, r := range pinyin {
		if m, ok := toneMarks[r]; ok {
			result.WriteRune(m.base)
			tone = m.tone
		} else {
			result.WriteRune(r)
		}
	}

	if tone == ToneUnknown {
		tone = Tone5
	}

	return tone, result.String()
}

// ToNumbered converts tone-marked pinyin to its tone-number form.
// Example: nǐ → ni3, ma → ma5.
func ToNumbered(pinyin string) string {
	if pinyin == "" {
		return ""
	}
	tone, base := extractTone(pinyin)
	return base + strconv.Itoa(int(tone))
}

// ToneOf returns the tone (1-5) of a tone-marked syllable.
// It agrees with ToNumbered: when several toned glyphs are present the last one wins.
func ToneOf(pinyin string) Tone {
	tone, _ := extractTone(pinyin)
	return tone
}

// StripToneMarks replaces every toned glyph with its base letter.
func StripToneMarks(pinyin string) string {
	_, base := extractTone(pinyin)
	return base
}

// ApplyToneToZhuyin appends the tone of pinyin to a Zhuyin base, either as a
// Zhuyin diacritic or as a digit. An empty base stays empty.
func ApplyToneToZhuyin(zhuyin, pinyin string, display ToneDisplay) string {
	if zhuyin == "" {
		return ""
	}
	tone := ToneOf(pinyin)
	if display == ToneNumber {
		return zhuyin + strconv.Itoa(int(tone))
	}
	return zhuyin + zhuyinToneMarks[tone]
}

// Format renders a tone-marked reading for display.
func Format(v Variant, mode Mode, display ToneDisplay) string {
	if mode == ModeZhuyin {
		return ApplyToneToZhuyin(v.Zhuyin, v.Pinyin, display)
	}
	if display == ToneNumber {
		return ToNumbered(v.Pinyin)
	}
	return v.Pinyin
}
