package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/hzr/internal/clipboard"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/f3rmion/hzr/internal/tui/bigchar"
	"github.com/f3rmion/hzr/internal/tui/components"
)

// DefaultText is converted when the view opens.
const DefaultText = "你好，世界！"

// Definer returns an English definition for a character.
type Definer interface {
	Definition(char string) string
}

// ConvertOptions configures a ConvertModel.
type ConvertOptions struct {
	Lookup      ruby.Lookup
	Definitions Definer           // Optional
	Glyphs      *bigchar.Renderer // Optional large preview of the selected character
	Mode        pinyin.Mode
	ToneDisplay pinyin.ToneDisplay
	Text        string // Initial input, DefaultText when empty
}

// ConvertModel is the text conversion view: an input area, the annotated
// output and a detail panel for the selected character.
type ConvertModel struct {
	input  textarea.Model
	lookup ruby.Lookup
	defs   Definer
	glyphs *bigchar.Renderer

	tokens   ruby.Tokens
	lines    []ruby.Line
	selected int
	mode     pinyin.Mode
	display  pinyin.ToneDisplay

	editing    bool
	picking    bool
	pickCursor int

	status    string
	statusErr bool

	keys convertKeys
	help help.Model

	width  int
	height int
}

// NewConvertModel creates a convert view with the input focused.
func NewConvertModel(opts ConvertOptions) ConvertModel {
	text := opts.Text
	if text == "" {
		text = DefaultText
	}
	mode := opts.Mode
	if mode == "" {
		mode = pinyin.ModePinyin
	}
	display := opts.ToneDisplay
	if display == "" {
		display = pinyin.ToneMark
	}

	ta := textarea.New()
	ta.Placeholder = "Enter Chinese text..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline = newlineKey
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.SetValue(text)
	ta.Focus()

	return ConvertModel{
		input:    ta,
		lookup:   opts.Lookup,
		defs:     opts.Definitions,
		glyphs:   opts.Glyphs,
		selected: ruby.NoSelection,
		mode:     mode,
		display:  display,
		editing:  true,
		keys:     newConvertKeys(),
		help:     help.New(),
	}
}

// Init converts the initial text.
func (m ConvertModel) Init() tea.Cmd {
	return m.convert(false)
}

// SetSize updates the view dimensions.
func (m *ConvertModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(width-4, 10))
	m.help.Width = width
}

// Capturing reports whether the view consumes every key, so global shortcuts
// must not fire.
func (m ConvertModel) Capturing() bool {
	return m.editing || m.picking
}

// Tokens returns the current conversion.
func (m ConvertModel) Tokens() ruby.Tokens { return m.tokens }

// Selected returns the selected token index or ruby.NoSelection.
func (m ConvertModel) Selected() int { return m.selected }

// Mode returns the display mode.
func (m ConvertModel) Mode() pinyin.Mode { return m.mode }

// ToneDisplay returns how tones are shown.
func (m ConvertModel) ToneDisplay() pinyin.ToneDisplay { return m.display }

// Editing reports whether the input has focus.
func (m ConvertModel) Editing() bool { return m.editing }

// Picking reports whether the reading picker is open.
func (m ConvertModel) Picking() bool { return m.picking }

// Update handles messages.
func (m ConvertModel) Update(msg tea.Msg) (ConvertModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConvertedMsg:
		m.tokens = msg.Tokens
		m.lines = ruby.SegmentLines(msg.Tokens)
		m.selected = ruby.NoSelection
		m.picking = false
		return m, nil

	case ReloadMsg:
		m.input.SetValue(msg.Text)
		m.stopEditing()
		return m, m.convert(true)

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.editing:
			return m.updateEditing(msg)
		case m.picking:
			return m.updatePicking(msg), nil
		default:
			return m.updateBrowsing(msg)
		}
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ConvertModel) updateEditing(msg tea.KeyMsg) (ConvertModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Convert):
		m.stopEditing()
		return m, m.convert(true)
	case key.Matches(msg, m.keys.Leave):
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ConvertModel) updatePicking(msg tea.KeyMsg) ConvertModel {
	variants := len(m.tokens[m.selected].Variants)

	switch {
	case key.Matches(msg, m.keys.PickUp):
		m.pickCursor = (m.pickCursor - 1 + variants) % variants
	case key.Matches(msg, m.keys.PickDown):
		m.pickCursor = (m.pickCursor + 1) % variants
	case key.Matches(msg, m.keys.PickChoose):
		m.tokens = ruby.SelectVariant(m.tokens, m.selected, m.pickCursor)
		m.lines = ruby.SegmentLines(m.tokens)
		m.picking = false
	case key.Matches(msg, m.keys.PickCancel):
		m.picking = false
	}
	return m
}

func (m ConvertModel) updateBrowsing(msg tea.KeyMsg) (ConvertModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.selected = ruby.MoveSelection(m.tokens, m.selected, ruby.Forward)
	case key.Matches(msg, m.keys.Prev):
		m.selected = ruby.MoveSelection(m.tokens, m.selected, ruby.Backward)
	case key.Matches(msg, m.keys.NextPhrase):
		m.selected = ruby.MoveToPhrase(m.tokens, m.selected, ruby.Forward)
	case key.Matches(msg, m.keys.PrevPhrase):
		m.selected = ruby.MoveToPhrase(m.tokens, m.selected, ruby.Backward)
	case key.Matches(msg, m.keys.Pick):
		if m.selected >= 0 && m.selected < len(m.tokens) && m.tokens[m.selected].Polyphonic() {
			m.picking = true
			m.pickCursor = m.tokens[m.selected].Active
		}
	case key.Matches(msg, m.keys.Cycle):
		if m.selected >= 0 && m.selected < len(m.tokens) {
			m.tokens = ruby.CycleVariant(m.tokens, m.selected, 1)
			m.lines = ruby.SegmentLines(m.tokens)
		}
	case key.Matches(msg, m.keys.Mode):
		if m.mode == pinyin.ModePinyin {
			m.mode = pinyin.ModeZhuyin
		} else {
			m.mode = pinyin.ModePinyin
		}
	case key.Matches(msg, m.keys.Tone):
		if m.display == pinyin.ToneMark {
			m.display = pinyin.ToneNumber
		} else {
			m.display = pinyin.ToneMark
		}
	case key.Matches(msg, m.keys.Copy):
		return m.copy()
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *ConvertModel) stopEditing() {
	m.editing = false
	m.input.Blur()
}

func (m ConvertModel) copy() (ConvertModel, tea.Cmd) {
	if len(m.tokens) == 0 {
		return m, nil
	}
	if err := clipboard.Write(ruby.AnnotatedText(m.tokens, m.mode, m.display)); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		m.statusErr = true
	} else {
		m.status = "Copied annotated text"
		m.statusErr = false
	}
	return m, clearStatusAfter(2 * time.Second)
}

// convert runs the conversion of the current input as a command.
func (m ConvertModel) convert(record bool) tea.Cmd {
	text, lookup := m.input.Value(), m.lookup
	return func() tea.Msg {
		return ConvertedMsg{Text: text, Tokens: ruby.Convert(text, lookup), Record: record}
	}
}

// View renders the convert view.
func (m ConvertModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ruby"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s · tones as %ss", m.mode, m.display)))
	b.WriteString("\n\n")

	box := inputBoxStyle
	if m.editing {
		box = inputBoxActiveStyle
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.tokens) > 0 {
		out := components.RenderRuby(m.lines, components.RubyOptions{
			Mode:        m.mode,
			ToneDisplay: m.display,
			Width:       max(m.width-8, 0),
			Selected:    m.selected,
			Styles:      rubyStyles,
		})
		b.WriteString(rubyBoxStyle.Render(out))
		b.WriteString("\n")
	}

	if m.selected >= 0 && m.selected < len(m.tokens) {
		b.WriteString(m.renderDetail(m.tokens[m.selected]))
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(copiedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	switch {
	case m.editing:
		b.WriteString(m.help.ShortHelpView(m.keys.editing()))
	case m.picking:
		b.WriteString(m.help.ShortHelpView(m.keys.picking()))
	default:
		b.WriteString(m.help.ShortHelpView(m.keys.browsing()))
	}

	return b.String()
}

// renderDetail shows the selected character large, its readings and its
// definition. The picker replaces the reading list while open.
func (m ConvertModel) renderDetail(tok ruby.Token) string {
	var info strings.Builder

	if m.picking {
		info.WriteString(m.renderPicker(tok))
	} else {
		for i, v := range tok.Variants {
			marker := "  "
			if i == tok.Active {
				marker = "▸ "
			}
			info.WriteString(marker)
			info.WriteString(valueStyle.Render(fmt.Sprintf("%-8s %-8s %s",
				v.Pinyin,
				pinyin.ToNumbered(v.Pinyin),
				pinyin.ApplyToneToZhuyin(v.Zhuyin, v.Pinyin, m.display))))
			info.WriteString("\n")
		}
		if tok.Polyphonic() {
			info.WriteString(mutedStyle.Render("enter to choose a reading"))
			info.WriteString("\n")
		}
	}

	if m.defs != nil {
		if def := m.defs.Definition(tok.Text); def != "" {
			info.WriteString("\n")
			info.WriteString(labelStyle.Render("Meaning"))
			info.WriteString(valueStyle.Render(def))
		}
	}

	preview := tok.Text
	if art := m.renderGlyph(tok.Text); art != "" {
		preview = art
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		bigCharStyle.Render(preview),
		"  ",
		info.String(),
	)
}

func (m ConvertModel) renderPicker(tok ruby.Token) string {
	var rows []string
	for i, v := range tok.Variants {
		label := pinyin.Format(v, m.mode, m.display)
		if i == m.pickCursor {
			rows = append(rows, pickerItemActiveStyle.Render(label))
		} else {
			rows = append(rows, pickerItemStyle.Render(label))
		}
	}
	return pickerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderGlyph draws the character as block art when a font is available and
// the terminal leaves room for it.
func (m ConvertModel) renderGlyph(char string) string {
	const cols, rows = 16, 8
	if m.glyphs == nil || m.height < 30 || m.width < 60 {
		return ""
	}
	return m.glyphs.Render(char, cols, rows)
}
