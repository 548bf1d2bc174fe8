package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/pinyin"
	"github.com/f3rmion/hzr/internal/ruby"
	"github.com/f3rmion/hzr/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stubLookup = ruby.TableLookup(map[string][]pinyin.Variant{
	"你": {{Pinyin: "nǐ", Zhuyin: "ㄋㄧ"}},
	"好": {{Pinyin: "hǎo", Zhuyin: "ㄏㄠ"}, {Pinyin: "hào", Zhuyin: "ㄏㄠ"}},
})

func newTestApp(t *testing.T) (AppModel, *history.Manager) {
	t.Helper()

	mgr := history.NewManager(history.NewMemStore(), 0, nil)
	app := NewApp(context.Background(), views.ConvertOptions{Lookup: stubLookup, Text: "你好"}, mgr)
	app = update(t, app, tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, mgr
}

func update(t *testing.T, app AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := app.Update(msg)
	out, ok := next.(AppModel)
	require.True(t, ok)
	return out
}

func updateCmd(t *testing.T, app AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := app.Update(msg)
	return next.(AppModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_ViewBeforeResize(t *testing.T) {
	app := NewApp(context.Background(), views.ConvertOptions{Lookup: stubLookup}, nil)
	assert.Equal(t, "Loading...", app.View())
}

func TestApp_RecordedConversionGoesToHistory(t *testing.T) {
	app, mgr := newTestApp(t)

	app, cmd := updateCmd(t, app, views.ConvertedMsg{Text: "你好", Tokens: ruby.Convert("你好", stubLookup), Record: true})
	require.NotNil(t, cmd)

	changed, ok := cmd().(views.HistoryChangedMsg)
	require.True(t, ok)
	require.Len(t, changed.Items, 1)
	assert.Equal(t, "你好", changed.Items[0].InputText)
	assert.Zero(t, changed.DuplicateID)
	assert.Len(t, mgr.Items(), 1)

	app = update(t, app, changed)
	_, cmd = updateCmd(t, app, views.ConvertedMsg{Text: "你好", Tokens: ruby.Convert("你好", stubLookup), Record: true})
	changed = cmd().(views.HistoryChangedMsg)
	assert.Equal(t, changed.Items[0].ID, changed.DuplicateID)
	assert.Len(t, mgr.Items(), 1)
}

func TestApp_UnrecordedConversionSkipsHistory(t *testing.T) {
	app, mgr := newTestApp(t)

	_, cmd := updateCmd(t, app, views.ConvertedMsg{Text: "你好", Tokens: ruby.Convert("你好", stubLookup)})
	assert.Nil(t, cmd)
	assert.Empty(t, mgr.Items())
}

func TestApp_TypingDoesNotTriggerShortcuts(t *testing.T) {
	app, _ := newTestApp(t)

	// The input starts focused, so "2" and "?" are text.
	app = update(t, app, runes("2"))
	assert.Equal(t, ViewConvert, app.currentView)
	app = update(t, app, runes("?"))
	assert.False(t, app.showHelp)

	// Leaving the input re-enables them.
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app = update(t, app, runes("2"))
	assert.Equal(t, ViewHistory, app.currentView)
	assert.Equal(t, 1, app.selectedMenu)
}

func TestApp_ReloadSwitchesToConvert(t *testing.T) {
	app, _ := newTestApp(t)
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app = update(t, app, runes("2"))
	require.Equal(t, ViewHistory, app.currentView)

	app, cmd := updateCmd(t, app, views.ReloadMsg{Text: "好"})
	assert.Equal(t, ViewConvert, app.currentView)
	require.NotNil(t, cmd)

	converted := cmd().(views.ConvertedMsg)
	assert.Equal(t, "好", converted.Text)
	assert.True(t, converted.Record)
}

func TestApp_RemoveAndClear(t *testing.T) {
	app, mgr := newTestApp(t)
	ctx := context.Background()
	mgr.Add(ctx, "你")
	mgr.Add(ctx, "好")
	id := mgr.Items()[0].ID

	_, cmd := updateCmd(t, app, views.RemoveHistoryMsg{ID: id})
	changed := cmd().(views.HistoryChangedMsg)
	assert.Len(t, changed.Items, 1)

	_, cmd = updateCmd(t, app, views.ClearHistoryMsg{})
	changed = cmd().(views.HistoryChangedMsg)
	assert.Empty(t, changed.Items)
	assert.Empty(t, mgr.Items())
}

func TestApp_SidebarNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc}) // leave input
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc}) // focus sidebar
	require.True(t, app.sidebarActive)

	app = update(t, app, runes("j"))
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewHistory, app.currentView)
	assert.False(t, app.sidebarActive)
}

func TestApp_HelpOverlay(t *testing.T) {
	app, _ := newTestApp(t)
	app = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})

	app = update(t, app, runes("?"))
	require.True(t, app.showHelp)
	assert.Contains(t, app.View(), "Press any key to close")

	app = update(t, app, runes("x"))
	assert.False(t, app.showHelp)
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := updateCmd(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
