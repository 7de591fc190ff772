package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exportdto "umusanzu/internal/modules/export/dto"
	sharedto "umusanzu/internal/modules/share/dto"
	"umusanzu/internal/ui/theme"
)

// StatsPort exposes archive totals.
type StatsPort interface {
	Stats(ctx context.Context) (exportdto.Stats, error)
}

// SharePort lists the configured share plugins.
type SharePort interface {
	List(ctx context.Context) ([]sharedto.PluginInfo, error)
}

type LoadedMsg struct {
	Stats   exportdto.Stats
	Plugins []sharedto.PluginInfo
	Err     error
}

type Model struct {
	stats  StatsPort
	share  SharePort
	loaded LoadedMsg
	width  int
}

func New(stats StatsPort, share SharePort) Model {
	return Model{stats: stats, share: share}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Refresh reloads the archive totals.
func (m Model) Refresh() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case LoadedMsg:
		m.loaded = msg
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loaded.Err != nil {
		return theme.Bad.Render(m.loaded.Err.Error())
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Contributions") + "\n\n")
	b.WriteString(fmt.Sprintf("  total  %s\n", theme.Hot.Render(fmt.Sprintf("%d", m.loaded.Stats.Total))))

	modes := make([]string, 0, len(m.loaded.Stats.ByMode))
	for mode := range m.loaded.Stats.ByMode {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		b.WriteString(fmt.Sprintf("  %-20s %d\n", mode, m.loaded.Stats.ByMode[mode]))
	}

	b.WriteString("\n" + theme.Title.Render("Share plugins") + "\n\n")
	if len(m.loaded.Plugins) == 0 {
		b.WriteString(theme.Muted.Render("  (none configured)") + "\n")
	}
	for _, p := range m.loaded.Plugins {
		state := theme.Good.Render("enabled")
		if !p.Enabled {
			state = theme.Muted.Render("disabled")
		}
		b.WriteString(fmt.Sprintf("  %-16s %-8s %s  %s\n",
			p.Name, p.Version, state, theme.Muted.Render(strings.Join(p.Capabilities, ","))))
	}

	b.WriteString("\n" + theme.Muted.Render("r: refresh"))
	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out := LoadedMsg{}
		if m.stats != nil {
			out.Stats, out.Err = m.stats.Stats(ctx)
		}
		if out.Err == nil && m.share != nil {
			out.Plugins, out.Err = m.share.List(ctx)
		}
		return out
	}
}
