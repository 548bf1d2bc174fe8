// Package ruby turns Chinese text into phonetically annotated tokens and
// provides the line layout and keyboard navigation over them.
package ruby

import "unicode/utf8"

// Bounds of the CJK Unified Ideographs block treated as annotatable.
const (
	firstChinese = 0x4E00
	lastChinese  = 0x9FBB
)

// IsChineseCharacter reports whether r is in the annotated ideograph range.
func IsChineseCharacter(r rune) bool {
	return r >= firstChinese && r <= lastChinese
}

// IsChineseString classifies the first code point of s. Empty input is false.
func IsChineseString(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return IsChineseCharacter(r)
}

// IsChinese reports whether text contains any annotatable character.
func IsChinese(text string) bool {
	for _, r := range text {
		if IsChineseCharacter(r) {
			return true
		}
	}
	return false
}
