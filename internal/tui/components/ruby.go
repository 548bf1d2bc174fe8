// Package components provides shared UI components for the TUI.
package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/mattn/go-runewidth"
)

// RubyStyles styles the two rows of rendered ruby text.
type RubyStyles struct {
	Reading    lipgloss.Style // Annotation above a character
	Polyphonic lipgloss.Style // Annotation of a character with several readings
	Base       lipgloss.Style // Annotated character
	Plain      lipgloss.Style // Unannotated text
	Selected   lipgloss.Style // Both rows of the selected character
}

// RubyOptions controls RenderRuby.
type RubyOptions struct {
	Mode        pinyin.Mode
	ToneDisplay pinyin.ToneDisplay
	Width       int // Wrap width in terminal cells, 0 for no wrapping
	Selected    int // Token index to highlight, ruby.NoSelection for none
	Styles      *RubyStyles
}

// cell is one column of output: an annotation over a base glyph, or one
// grapheme of plain text.
type cell struct {
	top, bottom string
	width       int
	index       int
	annotated   bool
	polyphonic  bool
}

// RenderRuby lays lines out as pairs of rows with each reading above its
// character. An empty final line opened by a trailing break draws nothing.
// Without styles the output is plain text with trailing spaces trimmed.
func RenderRuby(lines []ruby.Line, opts RubyOptions) string {
	if n := len(lines); n > 1 && len(lines[n-1].Items) == 0 {
		lines = lines[:n-1]
	}

	var rows []string
	for _, line := range lines {
		cells := lineCells(line, opts)
		if len(cells) == 0 {
			rows = append(rows, "")
			continue
		}
		for _, chunk := range wrapCells(cells, opts.Width) {
			top, bottom := renderCells(chunk, opts)
			rows = append(rows, top, bottom)
		}
	}
	return strings.Join(rows, "\n")
}

func lineCells(line ruby.Line, opts RubyOptions) []cell {
	var cells []cell
	for _, item := range line.Items {
		tok := item.Token
		if tok.Annotated {
			reading := tok.Reading(opts.Mode, opts.ToneDisplay)
			w := max(runewidth.StringWidth(reading), runewidth.StringWidth(tok.Text))
			cells = append(cells, cell{
				top:        reading,
				bottom:     tok.Text,
				width:      w + 1,
				index:      item.Index,
				annotated:  true,
				polyphonic: tok.Polyphonic(),
			})
			continue
		}

		for g := graphemes.FromString(tok.Text); g.Next(); {
			s := g.Value()
			if s == "\t" {
				s = " "
			} else if r := []rune(s); len(r) == 1 && unicode.IsControl(r[0]) {
				continue
			}
			cells = append(cells, cell{bottom: s, width: runewidth.StringWidth(s), index: item.Index})
		}
	}
	return cells
}

func wrapCells(cells []cell, width int) [][]cell {
	if width <= 0 {
		return [][]cell{cells}
	}

	var chunks [][]cell
	start, used := 0, 0
	for i, c := range cells {
		if used+c.width > width && i > start {
			chunks = append(chunks, cells[start:i])
			start, used = i, 0
		}
		used += c.width
	}
	return append(chunks, cells[start:])
}

func renderCells(cells []cell, opts RubyOptions) (string, string) {
	var top, bottom strings.Builder
	for _, c := range cells {
		t := center(c.top, c.width)
		b := center(c.bottom, c.width)

		if opts.Styles != nil {
			st := opts.Styles
			switch {
			case c.annotated && c.index == opts.Selected:
				t, b = st.Selected.Render(t), st.Selected.Render(b)
			case c.annotated && c.polyphonic:
				t, b = st.Polyphonic.Render(t), st.Base.Render(b)
			case c.annotated:
				t, b = st.Reading.Render(t), st.Base.Render(b)
			default:
				b = st.Plain.Render(b)
			}
		}

		top.WriteString(t)
		bottom.WriteString(b)
	}

	if opts.Styles == nil {
		return strings.TrimRight(top.String(), " "), strings.TrimRight(bottom.String(), " ")
	}
	return top.String(), bottom.String()
}

// center pads s with spaces to width cells, leaning left.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w - 1) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
