// Package views provides the individual views for the unified TUI.
package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/ruby"
)

// ConvertedMsg carries the tokens of a finished conversion. Record is set when
// the user asked for the conversion and it should go into history.
type ConvertedMsg struct {
	Text   string
	Tokens ruby.Tokens
	Record bool
}

// ReloadMsg asks the convert view to load and convert text from history.
type ReloadMsg struct {
	Text string
}

// RemoveHistoryMsg asks for one history entry to be deleted.
type RemoveHistoryMsg struct {
	ID int
}

// ClearHistoryMsg asks for the whole history to be deleted.
type ClearHistoryMsg struct{}

// HistoryChangedMsg carries the history list after a load or change.
// DuplicateID is the entry matching the last recorded text, if any.
type HistoryChangedMsg struct {
	Items       []history.Item
	DuplicateID int
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
