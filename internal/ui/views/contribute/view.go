package contribute

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "umusanzu/internal/modules/session/dto"
	apperrors "umusanzu/internal/platform/errors"
	"umusanzu/internal/platform/i18n"
	"umusanzu/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal session surface this view drives.
type Port interface {
	Start(ctx context.Context, mode string) (sessiondto.StartOutput, error)
	Submit(mode, response string) (sessiondto.StepOutput, error)
	Skip(mode string) (sessiondto.StepOutput, error)
	Commit(ctx context.Context, mode string) (sessiondto.CommitOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StartedMsg struct {
	Mode string
	Out  sessiondto.StartOutput
	Err  error
}

type SteppedMsg struct {
	Mode string
	Out  sessiondto.StepOutput
	Err  error
}

type CommittedMsg struct {
	Mode string
	Out  sessiondto.CommitOutput
	Err  error
}

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseActive
	phaseDone
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model drives one translate or reverse session: it shows the current prompt,
// collects the response, and commits the batch when the queue is done.
type Model struct {
	port      Port
	mode      string
	tr        *i18n.Translator
	promptKey string

	input    textinput.Model
	spinner  spinner.Model
	phase    phase
	prompt   string
	position int
	total    int
	status   string
	errText  string
	fallback bool
	width    int
	height   int
}

func New(port Port, mode string, tr *i18n.Translator) Model {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	promptKey := "prompt.translate"
	if mode == sessiondto.ModeReverse {
		promptKey = "prompt.reverse"
	}

	return Model{
		port:      port,
		mode:      mode,
		tr:        tr,
		promptKey: promptKey,
		input:     ti,
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Begin starts a fresh session for this view's mode.
func (m *Model) Begin() tea.Cmd {
	m.phase = phaseLoading
	m.errText = ""
	m.status = m.tr.T("status.loading", nil)
	return tea.Batch(m.startCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(m.width-8, 80)

	case StartedMsg:
		if msg.Mode != m.mode {
			break
		}
		if msg.Err != nil {
			m.phase = phaseIdle
			m.errText = m.startErrText(msg.Err)
			return m, nil
		}
		m.phase = phaseActive
		m.prompt = msg.Out.Prompt
		m.position = msg.Out.Position
		m.total = msg.Out.Total
		m.fallback = msg.Out.UsedFallback
		m.errText = ""
		m.status = m.progressText()
		m.input.Reset()
		cmds = append(cmds, m.input.Focus())

	case SteppedMsg:
		if msg.Mode != m.mode {
			break
		}
		if msg.Err != nil {
			m.errText = m.submitErrText(msg.Err)
			return m, nil
		}
		m.errText = ""
		if msg.Out.Done {
			m.phase = phaseDone
			m.status = m.tr.T("status.completed", nil)
			m.input.Blur()
			return m, m.commitCmd()
		}
		m.prompt = msg.Out.Prompt
		m.position = msg.Out.Position
		m.total = msg.Out.Total
		m.status = m.progressText()
		m.input.Reset()

	case CommittedMsg:
		if msg.Mode != m.mode {
			break
		}
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNothingToExport) {
				m.status = m.tr.T("status.nothing_to_export", nil)
			} else {
				m.errText = msg.Err.Error()
			}
			return m, nil
		}
		m.status = m.tr.T("status.exported", map[string]any{"Path": msg.Out.Path})

	case spinner.TickMsg:
		if m.phase == phaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.phase == phaseIdle || m.phase == phaseDone {
				return m, m.Begin()
			}
			if m.phase == phaseActive {
				return m, m.submitCmd(m.input.Value())
			}
		case "ctrl+k":
			if m.phase == phaseActive {
				return m, m.skipCmd()
			}
		}
	}

	if m.phase == phaseActive {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch m.phase {
	case phaseIdle:
		lines := theme.Muted.Render("enter: "+m.tr.T("status.loading", nil))
		if m.errText != "" {
			lines = theme.Bad.Render(m.errText) + "\n\n" + lines
		}
		return lines
	case phaseLoading:
		return m.spinner.View() + " " + m.status
	case phaseDone:
		return theme.Good.Render(m.status) + "\n\n" +
			theme.Muted.Render("enter: "+m.tr.T("status.loading", nil))
	}

	header := theme.Muted.Render(m.status)
	if m.fallback {
		header += "  " + theme.Hot.Render(m.tr.T("error.connectivity", nil))
	}
	body := theme.Prompt.Render(m.tr.T(m.promptKey, nil)) + "\n\n" +
		theme.Title.Render(m.prompt) + "\n\n" +
		m.input.View()
	footer := theme.Muted.Render("enter: ok  ctrl+k: skip")
	if m.errText != "" {
		footer = theme.Bad.Render(m.errText) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) progressText() string {
	return m.tr.T("status.progress", map[string]any{
		"Current": fmt.Sprintf("%d", m.position),
		"Total":   fmt.Sprintf("%d", m.total),
	})
}

func (m Model) startErrText(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoNewWork):
		return m.tr.T("error.no_new_work", nil)
	case errors.Is(err, apperrors.ErrConnectivity):
		return m.tr.T("error.connectivity", nil)
	}
	return err.Error()
}

func (m Model) submitErrText(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		return m.tr.T("error.empty", nil)
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		return m.tr.T("error.duplicate", nil)
	}
	return err.Error()
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), m.mode)
		return StartedMsg{Mode: m.mode, Out: out, Err: err}
	}
}

func (m Model) submitCmd(response string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Submit(m.mode, response)
		return SteppedMsg{Mode: m.mode, Out: out, Err: err}
	}
}

func (m Model) skipCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Skip(m.mode)
		return SteppedMsg{Mode: m.mode, Out: out, Err: err}
	}
}

func (m Model) commitCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Commit(context.Background(), m.mode)
		return CommittedMsg{Mode: m.mode, Out: out, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
