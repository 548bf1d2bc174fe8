package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/hzr/internal/history"
	"github.com/f3rmion/hzr/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewConvert ViewType = iota
	ViewHistory
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// AppModel is the main unified TUI model
type AppModel struct {
	ctx     context.Context
	history *history.Manager

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	convertView views.ConvertModel
	historyView views.HistoryModel

	keys     appKeys
	showHelp bool
}

// NewApp creates the TUI. A nil manager keeps history in memory.
func NewApp(ctx context.Context, opts views.ConvertOptions, mgr *history.Manager) AppModel {
	if mgr == nil {
		mgr = history.NewManager(nil, 0, nil)
	}

	return AppModel{
		ctx:          ctx,
		history:      mgr,
		sidebarWidth: 18,
		currentView:  ViewConvert,
		menuItems: []MenuItem{
			{Label: "Convert", View: ViewConvert, Shortcut: "1"},
			{Label: "History", View: ViewHistory, Shortcut: "2"},
		},
		convertView: views.NewConvertModel(opts),
		historyView: views.NewHistoryModel(),
		keys:        newAppKeys(),
	}
}

// Init converts the initial text and loads history.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.convertView.Init(), m.loadHistory())
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.capturing() {
			if next, cmd, handled := m.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2
		m.convertView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.ConvertedMsg:
		var cmd tea.Cmd
		m.convertView, cmd = m.convertView.Update(msg)
		if msg.Record {
			return m, tea.Batch(cmd, m.addHistory(msg.Text))
		}
		return m, cmd

	case views.ReloadMsg:
		m.switchTo(ViewConvert)
		var cmd tea.Cmd
		m.convertView, cmd = m.convertView.Update(msg)
		return m, cmd

	case views.RemoveHistoryMsg:
		return m, m.removeHistory(msg.ID)

	case views.ClearHistoryMsg:
		return m, m.clearHistory()

	case views.HistoryChangedMsg:
		m.historyView.SetItems(msg.Items, msg.DuplicateID)
		return m, nil
	}

	if m.sidebarActive {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewConvert:
		m.convertView, cmd = m.convertView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	}
	return m, cmd
}

// capturing reports whether the active view is consuming keys (typing or a
// prompt), in which case only ctrl+c is global.
func (m AppModel) capturing() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewConvert:
		return m.convertView.Capturing()
	case ViewHistory:
		return m.historyView.Capturing()
	}
	return false
}

func (m AppModel) handleGlobalKey(msg tea.KeyMsg) (AppModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil, true
	case key.Matches(msg, m.keys.Back):
		if m.sidebarActive {
			return m, tea.Quit, true
		}
		m.sidebarActive = true
		return m, nil, true
	case key.Matches(msg, m.keys.Sidebar):
		m.sidebarActive = !m.sidebarActive
		return m, nil, true
	}

	for _, item := range m.menuItems {
		if msg.String() == item.Shortcut {
			m.switchTo(item.View)
			return m, nil, true
		}
	}

	if m.sidebarActive {
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.selectedMenu < len(m.menuItems)-1 {
				m.selectedMenu++
			}
			return m, nil, true
		case key.Matches(msg, m.keys.Up):
			if m.selectedMenu > 0 {
				m.selectedMenu--
			}
			return m, nil, true
		case key.Matches(msg, m.keys.Open):
			m.switchTo(m.menuItems[m.selectedMenu].View)
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *AppModel) switchTo(view ViewType) {
	m.currentView = view
	for i, item := range m.menuItems {
		if item.View == view {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

func (m AppModel) loadHistory() tea.Cmd {
	ctx, mgr := m.ctx, m.history
	return func() tea.Msg {
		return views.HistoryChangedMsg{Items: mgr.Load(ctx)}
	}
}

func (m AppModel) addHistory(text string) tea.Cmd {
	ctx, mgr := m.ctx, m.history
	return func() tea.Msg {
		dup := mgr.Add(ctx, text)
		return views.HistoryChangedMsg{Items: mgr.Items(), DuplicateID: dup}
	}
}

func (m AppModel) removeHistory(id int) tea.Cmd {
	ctx, mgr := m.ctx, m.history
	return func() tea.Msg {
		mgr.Remove(ctx, id)
		return views.HistoryChangedMsg{Items: mgr.Items()}
	}
}

func (m AppModel) clearHistory() tea.Cmd {
	ctx, mgr := m.ctx, m.history
	return func() tea.Msg {
		mgr.Clear(ctx)
		return views.HistoryChangedMsg{}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewConvert:
		content = m.convertView.View()
	case ViewHistory:
		content = m.historyView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render("  漢字 ruby  "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		switch {
		case i == m.selectedMenu && m.sidebarActive:
			style = SidebarItemActiveStyle
		case i == m.selectedMenu:
			style = SidebarItemCurrentStyle
		default:
			style = SidebarItemStyle
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	h := help.New()
	h.ShowAll = true

	helpText := HelpTitleStyle.Render("hzr - Chinese ruby annotation") + "\n\n"
	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += h.View(m.keys) + "\n\n"
	helpText += HelpSectionStyle.Render("Convert View") + "\n"
	helpText += h.View(views.ConvertKeyMap()) + "\n\n"
	helpText += HelpSectionStyle.Render("History View") + "\n"
	helpText += h.View(views.HistoryKeyMap()) + "\n"
	helpText += "\n" + HelpHintStyle.Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
