package ruby

import (
	"testing"

	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookup knows a handful of characters; 好 and 行 are polyphonic.
var stubLookup = TableLookup(map[string][]pinyin.Variant{
	"你": {{Pinyin: "nǐ", Zhuyin: "ㄋㄧ"}},
	"好": {{Pinyin: "hǎo", Zhuyin: "ㄏㄠ"}, {Pinyin: "hào", Zhuyin: "ㄏㄠ"}},
	"世": {{Pinyin: "shì", Zhuyin: "ㄕ"}},
	"界": {{Pinyin: "jiè", Zhuyin: "ㄐㄧㄝ"}},
	"行": {{Pinyin: "xíng", Zhuyin: "ㄒㄧㄥ"}, {Pinyin: "háng", Zhuyin: "ㄏㄤ"}},
})

type tokenShape struct {
	text      string
	annotated bool
}

func shapes(tokens Tokens) []tokenShape {
	out := make([]tokenShape, len(tokens))
	for i, t := range tokens {
		out[i] = tokenShape{t.Text, t.Annotated}
	}
	return out
}

func TestIsChineseCharacter_Boundaries(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0x4DFF, false},
		{0x4E00, true},
		{0x9FBB, true},
		{0x9FBC, false},
		{'a', false},
		{'，', false},
		{'好', true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsChineseCharacter(tt.r), "U+%04X", tt.r)
	}
}

func TestIsChineseString(t *testing.T) {
	assert.False(t, IsChineseString(""))
	assert.True(t, IsChineseString("你"))
	assert.False(t, IsChineseString("x"))
}

func TestIsChinese(t *testing.T) {
	assert.True(t, IsChinese("Hello你"))
	assert.False(t, IsChinese("Hello, world!"))
	assert.False(t, IsChinese(""))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tokenShape
	}{
		{"greeting", "你好，世界！", []tokenShape{
			{"你", true}, {"好", true}, {"，", false}, {"世", true}, {"界", true}, {"！", false},
		}},
		{"mixed latin", "Hello你好World", []tokenShape{
			{"Hello", false}, {"你", true}, {"好", true}, {"World", false},
		}},
		{"run keeps breaks", "你\r\n\n好", []tokenShape{
			{"你", true}, {"\r\n\n", false}, {"好", true},
		}},
		{"no chinese", "abc", []tokenShape{{"abc", false}}},
		{"empty", "", []tokenShape{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shapes(Tokenize(tt.input, stubLookup)))
		})
	}
}

func TestTokenize_Variants(t *testing.T) {
	tokens := Tokenize("你好", stubLookup)
	require.Len(t, tokens, 2)

	assert.Equal(t, "nǐ", tokens[0].ActivePinyin())
	assert.Equal(t, "ㄋㄧ", tokens[0].ActiveZhuyin())
	assert.False(t, tokens[0].Polyphonic())
	assert.True(t, tokens[1].Polyphonic())
	assert.Equal(t, 0, tokens[1].Active)
	assert.Equal(t, "hǎo", tokens[1].ActivePinyin())
}

func TestTokenize_UnknownCharacterDegrades(t *testing.T) {
	tokens := Tokenize("龍", stubLookup)
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Annotated)
	assert.Equal(t, []pinyin.Variant{{}}, tokens[0].Variants)
	assert.Equal(t, "", tokens[0].ActivePinyin())

	tokens = Tokenize("龍", nil)
	require.Len(t, tokens, 1)
	assert.Len(t, tokens[0].Variants, 1)
}

func TestTokenize_AnnotatedInvariant(t *testing.T) {
	for _, tok := range Tokenize("他说：行不行？OK，好的。", stubLookup) {
		assert.Equal(t, tok.Annotated, len(tok.Variants) > 0, tok.Text)
	}
}

func TestTokenize_DoesNotAliasLookupSlices(t *testing.T) {
	table := map[string][]pinyin.Variant{"好": {{Pinyin: "hǎo"}}}
	tokens := Tokenize("好", TableLookup(table))
	tokens[0].Variants[0].Pinyin = "changed"
	assert.Equal(t, "hǎo", table["好"][0].Pinyin)
}

func TestConvert_BlankInput(t *testing.T) {
	assert.Empty(t, Convert("", stubLookup))
	assert.Empty(t, Convert(" \n\t ", stubLookup))
	assert.Len(t, Convert(" 你 ", stubLookup), 3)
}

func TestSelectVariant(t *testing.T) {
	tokens := Tokenize("好行", stubLookup)

	got := SelectVariant(tokens, 1, 1)
	assert.Equal(t, 1, got[1].Active)
	assert.Equal(t, "háng", got[1].ActivePinyin())
	assert.Equal(t, tokens[0], got[0])
	assert.Equal(t, 0, tokens[1].Active, "input must not change")
}

func TestSelectVariant_NoOps(t *testing.T) {
	tokens := Tokenize("好，", stubLookup)

	assert.Equal(t, tokens, SelectVariant(tokens, 0, 0), "already active")
	assert.Equal(t, tokens, SelectVariant(tokens, 0, 2), "variant out of range")
	assert.Equal(t, tokens, SelectVariant(tokens, 0, -1), "negative variant")
	assert.Equal(t, tokens, SelectVariant(tokens, 1, 0), "unannotated token")
	assert.Equal(t, tokens, SelectVariant(tokens, 5, 0), "token out of range")
}

func TestCycleVariant(t *testing.T) {
	tokens := Tokenize("好你", stubLookup)

	next := CycleVariant(tokens, 0, 1)
	assert.Equal(t, 1, next[0].Active)
	assert.Equal(t, 0, CycleVariant(next, 0, 1)[0].Active, "wraps forward")
	assert.Equal(t, 1, CycleVariant(tokens, 0, -1)[0].Active, "wraps backward")
	assert.Equal(t, tokens, CycleVariant(tokens, 1, 1), "single reading")
}

func TestAnnotatedText(t *testing.T) {
	tokens := Tokenize("你好!", stubLookup)

	assert.Equal(t, "你(nǐ)好(hǎo)!", AnnotatedText(tokens, pinyin.ModePinyin, pinyin.ToneMark))
	assert.Equal(t, "你(ni3)好(hao3)!", AnnotatedText(tokens, pinyin.ModePinyin, pinyin.ToneNumber))
	assert.Equal(t, "你(ㄋㄧˇ)好(ㄏㄠˇ)!", AnnotatedText(tokens, pinyin.ModeZhuyin, pinyin.ToneMark))
	assert.Equal(t, "龍", AnnotatedText(Tokenize("龍", nil), pinyin.ModePinyin, pinyin.ToneMark))
}

func TestTokensText(t *testing.T) {
	tokens := Tokenize("Hi 你好", stubLookup)
	assert.Equal(t, "Hi 你好", tokens.Text())
	assert.Equal(t, 2, tokens.Annotated())
}

func FuzzTokenize_Lossless(f *testing.F) {
	f.Add("你好，世界！")
	f.Add("Hello你好World")
	f.Add("a\r\nb\n\n你")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input, stubLookup)
		if got := tokens.Text(); got != input {
			t.Fatalf("Tokenize(%q) text = %q", input, got)
		}
		if got := LinesText(SegmentLines(tokens)); got != input {
			t.Fatalf("SegmentLines(%q) text = %q", input, got)
		}
		for i, tok := range tokens {
			if tok.Text == "" {
				t.Fatalf("token %d is empty", i)
			}
			if tok.Annotated != (len(tok.Variants) > 0) {
				t.Fatalf("token %d (%q) breaks the annotated invariant", i, tok.Text)
			}
			if i > 0 && !tok.Annotated && !tokens[i-1].Annotated {
				t.Fatalf("adjacent unannotated tokens at %d", i)
			}
		}
	})
}
