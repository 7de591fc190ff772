package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "umusanzu/internal/modules/session/dto"
	apperrors "umusanzu/internal/platform/errors"
	"umusanzu/internal/platform/i18n"
	"umusanzu/internal/ui/theme"
)

// Port is the author-mode session surface.
type Port interface {
	Start(ctx context.Context, mode string) (sessiondto.StartOutput, error)
	SubmitPair(mode, kirundi, french string) error
	Commit(ctx context.Context, mode string) (sessiondto.CommitOutput, error)
}

type StartedMsg struct{ Err error }

type PairAddedMsg struct{ Err error }

type CommittedMsg struct {
	Out sessiondto.CommitOutput
	Err error
}

const (
	fieldKirundi = iota
	fieldFrench
)

// Model collects freely authored Kirundi/French pairs.
type Model struct {
	port    Port
	tr      *i18n.Translator
	kirundi textinput.Model
	french  textinput.Model
	focus   int
	started bool
	count   int
	status  string
	errText string
	width   int
}

func New(port Port, tr *i18n.Translator) Model {
	ki := textinput.New()
	ki.CharLimit = 500
	ki.Width = 60
	fr := textinput.New()
	fr.CharLimit = 500
	fr.Width = 60

	return Model{port: port, tr: tr, kirundi: ki, french: fr}
}

func (m Model) Init() tea.Cmd { return nil }

// Begin opens the author session lazily on first activation.
func (m *Model) Begin() tea.Cmd {
	if m.started {
		return m.kirundi.Focus()
	}
	return tea.Batch(m.startCmd(), m.kirundi.Focus())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := min(m.width-8, 80)
		m.kirundi.Width = w
		m.french.Width = w

	case StartedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.started = true
		m.errText = ""

	case PairAddedMsg:
		if msg.Err != nil {
			m.errText = m.pairErrText(msg.Err)
			return m, nil
		}
		m.count++
		m.errText = ""
		m.status = m.tr.T("status.author_count", map[string]any{"Count": fmt.Sprintf("%d", m.count)})
		m.kirundi.Reset()
		m.french.Reset()
		m.focus = fieldKirundi
		cmds = append(cmds, m.kirundi.Focus())
		m.french.Blur()

	case CommittedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNothingToExport) {
				m.status = m.tr.T("status.nothing_to_export", nil)
			} else {
				m.errText = msg.Err.Error()
			}
			return m, nil
		}
		m.count = 0
		m.started = false
		m.status = m.tr.T("status.exported", map[string]any{"Path": msg.Out.Path})

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.focus == fieldKirundi {
				m.focus = fieldFrench
				m.kirundi.Blur()
				cmds = append(cmds, m.french.Focus())
				return m, tea.Batch(cmds...)
			}
			return m, m.submitCmd(m.kirundi.Value(), m.french.Value())
		case "shift+tab", "up":
			m.focus = fieldKirundi
			m.french.Blur()
			cmds = append(cmds, m.kirundi.Focus())
			return m, tea.Batch(cmds...)
		case "ctrl+d":
			return m, m.commitCmd()
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldKirundi {
		m.kirundi, cmd = m.kirundi.Update(msg)
	} else {
		m.french, cmd = m.french.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := theme.Prompt.Render(m.tr.T("prompt.author_kirundi", nil)) + "\n" +
		m.kirundi.View() + "\n\n" +
		theme.Prompt.Render(m.tr.T("prompt.author_french", nil)) + "\n" +
		m.french.View()

	footer := theme.Muted.Render("enter: next/add  ctrl+d: export")
	if m.errText != "" {
		footer = theme.Bad.Render(m.errText) + "\n" + footer
	}
	header := ""
	if m.status != "" {
		header = theme.Good.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) pairErrText(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		return m.tr.T("error.empty", nil)
	case errors.Is(err, apperrors.ErrSentenceTooShort):
		return m.tr.T("error.too_short", nil)
	}
	return err.Error()
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Start(context.Background(), sessiondto.ModeAuthor)
		return StartedMsg{Err: err}
	}
}

func (m Model) submitCmd(kirundi, french string) tea.Cmd {
	return func() tea.Msg {
		return PairAddedMsg{Err: m.port.SubmitPair(sessiondto.ModeAuthor, kirundi, french)}
	}
}

func (m Model) commitCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Commit(context.Background(), sessiondto.ModeAuthor)
		return CommittedMsg{Out: out, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
