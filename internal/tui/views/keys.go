package views

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// convertKeys are the bindings of the convert view.
type convertKeys struct {
	Next       key.Binding
	Prev       key.Binding
	NextPhrase key.Binding
	PrevPhrase key.Binding
	Pick       key.Binding
	Cycle      key.Binding
	Mode       key.Binding
	Tone       key.Binding
	Copy       key.Binding
	Edit       key.Binding

	// While editing the input.
	Convert key.Binding
	Leave   key.Binding

	// While the reading picker is open.
	PickUp     key.Binding
	PickDown   key.Binding
	PickChoose key.Binding
	PickCancel key.Binding
}

func newConvertKeys() convertKeys {
	return convertKeys{
		Next:       key.NewBinding(key.WithKeys("right", ".", ">"), key.WithHelp("→ . >", "next char")),
		Prev:       key.NewBinding(key.WithKeys("left", ",", "<"), key.WithHelp("← , <", "prev char")),
		NextPhrase: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next phrase")),
		PrevPhrase: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev phrase")),
		Pick:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose reading")),
		Cycle:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "next reading")),
		Mode:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pinyin/zhuyin")),
		Tone:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "marks/numbers")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Edit:       key.NewBinding(key.WithKeys("i", "e"), key.WithHelp("i", "edit text")),

		Convert: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert")),
		Leave:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),

		PickUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		PickDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PickChoose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		PickCancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k convertKeys) browsing() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.NextPhrase, k.PrevPhrase, k.Pick, k.Cycle, k.Mode, k.Tone, k.Copy, k.Edit}
}

func (k convertKeys) editing() []key.Binding {
	return []key.Binding{k.Convert, k.Leave, newlineKey}
}

func (k convertKeys) picking() []key.Binding {
	return []key.Binding{k.PickUp, k.PickDown, k.PickChoose, k.PickCancel}
}

// ShortHelp implements help.KeyMap.
func (k convertKeys) ShortHelp() []key.Binding {
	return k.browsing()
}

// FullHelp implements help.KeyMap.
func (k convertKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.NextPhrase, k.PrevPhrase},
		{k.Pick, k.Cycle, k.Mode, k.Tone, k.Copy},
		k.editing(),
	}
}

// newlineKey inserts a line break in the input; plain enter converts.
var newlineKey = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line"))

// historyKeys are the bindings of the history view.
type historyKeys struct {
	Up      key.Binding
	Down    key.Binding
	Load    key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Confirm key.Binding
}

func newHistoryKeys() historyKeys {
	return historyKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Load:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
	}
}

// ShortHelp implements help.KeyMap.
func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Load}, {k.Delete, k.Clear, k.Confirm}}
}

// ConvertKeyMap returns the convert view bindings for help screens.
func ConvertKeyMap() help.KeyMap { return newConvertKeys() }

// HistoryKeyMap returns the history view bindings for help screens.
func HistoryKeyMap() help.KeyMap { return newHistoryKeys() }
