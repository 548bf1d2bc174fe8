package ruby

import "strings"

// NoSelection is the selection index when no character is selected.
const NoSelection = -1

// Direction of a selection move.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// phraseDelimiters end a phrase when they appear in the run before a character.
const phraseDelimiters = "。！？!?.\n\r，,、；;：:"

// IsPhraseStart reports whether the annotated token at index begins a phrase:
// it is the first token, or it directly follows a text run containing a
// phrase delimiter.
func IsPhraseStart(tokens Tokens, index int) bool {
	if index < 0 || index >= len(tokens) || !tokens[index].Annotated {
		return false
	}
	if index == 0 {
		return true
	}

	prev := tokens[index-1]
	if prev.Annotated {
		return false
	}
	return strings.ContainsAny(prev.Text, phraseDelimiters)
}

// MoveSelection returns the next annotated token index from current in the
// given direction, or current when there is none.
func MoveSelection(tokens Tokens, current int, dir Direction) int {
	return scan(tokens, current, dir, func(i int) bool {
		return tokens[i].Annotated
	})
}

// MoveToPhrase returns the next phrase start from current in the given
// direction, or current when there is none.
func MoveToPhrase(tokens Tokens, current int, dir Direction) int {
	return scan(tokens, current, dir, func(i int) bool {
		return IsPhraseStart(tokens, i)
	})
}

func scan(tokens Tokens, current int, dir Direction, stop func(int) bool) int {
	if dir != Forward && dir != Backward {
		return current
	}
	for i := current + int(dir); i >= 0 && i < len(tokens); i += int(dir) {
		if stop(i) {
			return i
		}
	}
	return current
}
