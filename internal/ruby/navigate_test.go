package ruby

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhraseStart(t *testing.T) {
	tokens := Tokenize("你好。世界", stubLookup)
	// 你 好 。 世 界

	assert.True(t, IsPhraseStart(tokens, 0), "first token")
	assert.False(t, IsPhraseStart(tokens, 1), "follows an annotated token")
	assert.False(t, IsPhraseStart(tokens, 2), "unannotated")
	assert.True(t, IsPhraseStart(tokens, 3), "follows a delimiter")
	assert.False(t, IsPhraseStart(tokens, 4))
	assert.False(t, IsPhraseStart(tokens, -1))
	assert.False(t, IsPhraseStart(tokens, 5))
}

func TestIsPhraseStart_RunWithoutDelimiter(t *testing.T) {
	tokens := Tokenize("你 OK 好", stubLookup)
	assert.False(t, IsPhraseStart(tokens, 2))

	tokens = Tokenize("OK你", stubLookup)
	assert.False(t, IsPhraseStart(tokens, 1), "run before first character has no delimiter")
	assert.False(t, IsPhraseStart(tokens, 0), "unannotated first token")
}

func TestIsPhraseStart_Delimiters(t *testing.T) {
	for _, d := range []string{"。", "！", "？", "!", "?", ".", "\n", "\r", "，", ",", "、", "；", ";", "：", ":"} {
		tokens := Tokenize("你 "+d+" 好", stubLookup)
		assert.True(t, IsPhraseStart(tokens, 2), "%q", d)
	}
}

func TestMoveSelection(t *testing.T) {
	tokens := Tokenize("Hi你好，世界！", stubLookup)
	// 0:Hi 1:你 2:好 3:， 4:世 5:界 6:！

	tests := []struct {
		name    string
		current int
		dir     Direction
		want    int
	}{
		{"from none forward", NoSelection, Forward, 1},
		{"from none backward", NoSelection, Backward, NoSelection},
		{"next character", 1, Forward, 2},
		{"skips punctuation", 2, Forward, 4},
		{"back over punctuation", 4, Backward, 2},
		{"stops at last", 5, Forward, 5},
		{"stops at first", 1, Backward, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoveSelection(tokens, tt.current, tt.dir))
		})
	}
}

func TestMoveToPhrase(t *testing.T) {
	tokens := Tokenize("你好。世界！行行\n好", stubLookup)
	// 0:你 1:好 2:。 3:世 4:界 5:！ 6:行 7:行 8:\n 9:好

	tests := []struct {
		name    string
		current int
		dir     Direction
		want    int
	}{
		{"from none", NoSelection, Forward, 0},
		{"to second phrase", 0, Forward, 3},
		{"from mid phrase", 4, Forward, 6},
		{"after line break", 6, Forward, 9},
		{"no more phrases", 9, Forward, 9},
		{"back from mid phrase", 7, Backward, 6},
		{"back to start", 3, Backward, 0},
		{"back at start", 0, Backward, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MoveToPhrase(tokens, tt.current, tt.dir))
		})
	}
}

func TestMove_NeverSelectsUnannotated(t *testing.T) {
	tokens := Tokenize("a你b，c好d\n", stubLookup)

	for start := NoSelection; start <= len(tokens); start++ {
		for _, dir := range []Direction{Forward, Backward} {
			for _, move := range []func(Tokens, int, Direction) int{MoveSelection, MoveToPhrase} {
				got := move(tokens, start, dir)
				if got == start {
					continue
				}
				if assert.True(t, got >= 0 && got < len(tokens), "start %d", start) {
					assert.True(t, tokens[got].Annotated, "start %d selected %q", start, tokens[got].Text)
				}
			}
		}
	}
}

func TestMove_EmptyAndInvalidDirection(t *testing.T) {
	assert.Equal(t, NoSelection, MoveSelection(nil, NoSelection, Forward))
	assert.Equal(t, NoSelection, MoveToPhrase(nil, NoSelection, Backward))

	tokens := Tokenize("你好", stubLookup)
	assert.Equal(t, 0, MoveSelection(tokens, 0, Direction(0)))
}
