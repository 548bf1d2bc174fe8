package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/mattn/go-runewidth"
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingDelete
	pendingClear
)

// HistoryModel lists recent conversions.
type HistoryModel struct {
	items       []history.Item
	cursor      int
	duplicateID int
	pending     pendingAction
	now         func() time.Time

	keys historyKeys
	help help.Model

	width  int
	height int
}

// NewHistoryModel creates an empty history view.
func NewHistoryModel() HistoryModel {
	return HistoryModel{
		now:  time.Now,
		keys: newHistoryKeys(),
		help: help.New(),
	}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetItems replaces the list. A non-zero duplicateID highlights that entry and
// moves the cursor to it.
func (m *HistoryModel) SetItems(items []history.Item, duplicateID int) {
	m.items = items
	m.duplicateID = duplicateID
	m.pending = pendingNone

	if duplicateID != 0 {
		for i, it := range items {
			if it.ID == duplicateID {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
}

// Items returns the listed entries.
func (m HistoryModel) Items() []history.Item { return m.items }

// Capturing reports whether a confirmation prompt is waiting for an answer.
func (m HistoryModel) Capturing() bool {
	return m.pending != pendingNone
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.pending != pendingNone {
		action := m.pending
		m.pending = pendingNone
		if !key.Matches(keyMsg, m.keys.Confirm) {
			return m, nil
		}
		if action == pendingClear {
			return m, func() tea.Msg { return ClearHistoryMsg{} }
		}
		id := m.items[m.cursor].ID
		return m, func() tea.Msg { return RemoveHistoryMsg{ID: id} }
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Load):
		if len(m.items) > 0 {
			text := m.items[m.cursor].InputText
			return m, func() tea.Msg { return ReloadMsg{Text: text} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.items) > 0 {
			m.pending = pendingDelete
		}
	case key.Matches(keyMsg, m.keys.Clear):
		if len(m.items) > 0 {
			m.pending = pendingClear
		}
	}
	return m, nil
}

// View renders the history list.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d saved", len(m.items))))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(mutedStyle.Render("No conversions yet"))
		b.WriteString("\n")
		return b.String()
	}

	now := m.now()
	textWidth := max(m.width-20, 10)
	for i, it := range m.items {
		when := history.FormatTime(it.Timestamp, now)
		text := runewidth.Truncate(singleLine(it.InputText), textWidth, "…")
		row := fmt.Sprintf("%s  %s", runewidth.FillRight(text, textWidth), historyTimeStyle.Render(when))

		switch {
		case i == m.cursor:
			b.WriteString(historyRowActiveStyle.Render("▸ " + row))
		case it.ID == m.duplicateID:
			b.WriteString(historyDuplicateStyle.Render("= " + row))
		default:
			b.WriteString(historyRowStyle.Render("  " + row))
		}
		if it.ID == m.duplicateID {
			b.WriteString(historyDuplicateStyle.Render("  already saved"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.pending {
	case pendingDelete:
		b.WriteString(errorStyle.Render("Delete this entry? (y/n)"))
	case pendingClear:
		b.WriteString(errorStyle.Render("Clear all history? (y/n)"))
	default:
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// singleLine folds line breaks so an entry fits one row.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "⏎")
	return strings.ReplaceAll(s, "\n", "⏎")
}
