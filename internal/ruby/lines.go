package ruby

import "strings"

// LineItem is a token placed on a display line. Index is the token's position
// in the source Tokens; several items may share one index when a text run
// spans line breaks.
type LineItem struct {
	Index int
	Token Token
}

// Line is one display line of a token sequence.
type Line struct {
	Items              []LineItem
	HasLineBreakBefore bool
	Break              string // "\n" or "\r\n" that started the line, empty for the first
}

// Text concatenates the text of the line's items.
func (l Line) Text() string {
	var b strings.Builder
	for _, it := range l.Items {
		b.WriteString(it.Token.Text)
	}
	return b.String()
}

// SegmentLines splits tokens into display lines at the line breaks embedded in
// unannotated runs. Break characters are recorded on the line they start
// rather than kept in item text.
//
// Text ending in a break yields a final empty line, so LinesText rebuilds the
// input exactly. Display code that only wants visible rows should drop it.
func SegmentLines(tokens Tokens) []Line {
	var lines []Line
	current := Line{}

	for i, tok := range tokens {
		if tok.Annotated || !strings.ContainsAny(tok.Text, "\r\n") {
			current.Items = append(current.Items, LineItem{Index: i, Token: tok})
			continue
		}

		parts, breaks := splitBreaks(tok.Text)
		for j, part := range parts {
			if part != "" {
				piece := tok
				piece.Text = part
				current.Items = append(current.Items, LineItem{Index: i, Token: piece})
			}
			if j < len(breaks) {
				lines = append(lines, current)
				current = Line{HasLineBreakBefore: true, Break: breaks[j]}
			}
		}
	}

	// A line opened by a trailing break is kept, even empty, so no break is lost.
	if len(current.Items) > 0 || current.HasLineBreakBefore {
		lines = append(lines, current)
	}

	return lines
}

// splitBreaks splits s on "\r\n" and "\n". A lone "\r" is ordinary text.
// It returns len(breaks)+1 parts.
func splitBreaks(s string) (parts, breaks []string) {
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\n':
			parts = append(parts, s[start:i])
			breaks = append(breaks, "\n")
			start = i + 1
		case s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n':
			parts = append(parts, s[start:i])
			breaks = append(breaks, "\r\n")
			i++
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts, breaks
}

// LinesText rebuilds the text the lines were segmented from.
func LinesText(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		if l.HasLineBreakBefore {
			b.WriteString(l.Break)
		}
		b.WriteString(l.Text())
	}
	return b.String()
}
