package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "umusanzu/internal/modules/session/dto"
	"umusanzu/internal/platform/i18n"
	"umusanzu/internal/ui/theme"
	authorview "umusanzu/internal/ui/views/author"
	contributeview "umusanzu/internal/ui/views/contribute"
	statsview "umusanzu/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// The session port is the union of what the contribute and author views need;
// the views themselves narrow it further.

type sessionPort interface {
	contributeview.Port
	authorview.Port
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTranslate tabID = iota
	tabReverse
	tabAuthor
	tabStats
	tabCount
)

var tabKeys = [tabCount]string{
	"tab.translate", "tab.reverse", "tab.author", "tab.stats",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab  key.Binding
	Help key.Binding
	Quit key.Binding
	Skip key.Binding
	Done key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help: key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Skip: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "skip")),
		Done: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "export")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Skip, k.Done},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: tab routing across the three
// contribution workflows plus the stats tab. All business logic lives behind
// port interfaces; the views own their own rendering.
type Model struct {
	tr *i18n.Translator

	translateView contributeview.Model
	reverseView   contributeview.Model
	authorView    authorview.Model
	statsView     statsview.Model

	activeTab tabID
	begun     [tabCount]bool
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(
	session sessionPort,
	stats statsview.StatsPort,
	share statsview.SharePort,
	tr *i18n.Translator,
) Model {
	return Model{
		tr:            tr,
		translateView: contributeview.New(session, sessiondto.ModeTranslate, tr),
		reverseView:   contributeview.New(session, sessiondto.ModeReverse, tr),
		authorView:    authorview.New(session, tr),
		statsView:     statsview.New(stats, share),
		activeTab:     tabTranslate,
		keys:          defaultKeys(),
		help:          help.New(),
		status:        "murakaza neza",
	}
}

func (m Model) Init() tea.Cmd {
	return m.statsView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()
		// The first resize doubles as startup for the initial tab.
		cmds = append(cmds, m.activateTab())

	case contributeview.CommittedMsg:
		if msg.Err == nil {
			m.status = m.tr.T("status.exported", map[string]any{"Path": msg.Out.Path})
			cmds = append(cmds, m.statsView.Refresh())
		}

	case authorview.CommittedMsg:
		if msg.Err == nil {
			m.status = m.tr.T("status.exported", map[string]any{"Path": msg.Out.Path})
			cmds = append(cmds, m.statsView.Refresh())
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "ctrl+h" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmds = append(cmds, m.activateTab())
			return m, tea.Batch(cmds...)
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmds = append(cmds, m.activateTab())
			return m, tea.Batch(cmds...)
		case "ctrl+h":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	// Route everything else to the views. Session messages carry their mode,
	// so delivering them to both contribute views is safe.
	var cmd tea.Cmd
	switch msg.(type) {
	case contributeview.StartedMsg, contributeview.SteppedMsg, contributeview.CommittedMsg:
		m.translateView, cmd = m.translateView.Update(msg)
		cmds = append(cmds, cmd)
		m.reverseView, cmd = m.reverseView.Update(msg)
		cmds = append(cmds, cmd)
	case authorview.StartedMsg, authorview.PairAddedMsg, authorview.CommittedMsg:
		m.authorView, cmd = m.authorView.Update(msg)
		cmds = append(cmds, cmd)
	case statsview.LoadedMsg:
		m.statsView, cmd = m.statsView.Update(msg)
		cmds = append(cmds, cmd)
	default:
		cmds = append(cmds, m.updateActive(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabTranslate:
		m.translateView, cmd = m.translateView.Update(msg)
	case tabReverse:
		m.reverseView, cmd = m.reverseView.Update(msg)
	case tabAuthor:
		m.authorView, cmd = m.authorView.Update(msg)
	case tabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return cmd
}

// activateTab lazily starts a tab's session the first time it gains focus.
func (m *Model) activateTab() tea.Cmd {
	if m.begun[m.activeTab] {
		return nil
	}
	m.begun[m.activeTab] = true
	switch m.activeTab {
	case tabTranslate:
		return m.translateView.Begin()
	case tabReverse:
		return m.reverseView.Begin()
	case tabAuthor:
		return m.authorView.Begin()
	case tabStats:
		return m.statsView.Refresh()
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Padding(1, 2).
			Render(m.activeView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTranslate:
		return m.translateView.View()
	case tabReverse:
		return m.reverseView.View()
	case tabAuthor:
		return m.authorView.View()
	case tabStats:
		return m.statsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := m.tr.T(tabKeys[i], nil)
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "umusanzu  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("tab:switch  ctrl+h:help  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 4}
	m.translateView, _ = m.translateView.Update(sz)
	m.reverseView, _ = m.reverseView.Update(sz)
	m.authorView, _ = m.authorView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
}
