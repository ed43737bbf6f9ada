package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
)

// chromeRows is the number of terminal rows used around the frame: title,
// status line and help.
const chromeRows = 3

// Model is the Bubble Tea model showing one game session.
type Model struct {
	ctx      context.Context
	session  *session.Session
	keys     KeyMap
	help     help.Model
	frame    *FrameRenderer
	width    int
	height   int
	status   string
	quitting bool

	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewModel creates a model for a started session. ctx is used to restart
// the game. r may be nil for the local terminal.
func NewModel(ctx context.Context, s *session.Session, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Model{
		ctx:     ctx,
		session: s,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frame:   NewFrameRenderer(r),

		titleStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		statusStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
		helpStyle:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Init starts the refresh ticks.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		return m, frameCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		_ = m.session.Stop()
		return m, tea.Quit

	case core.ActionLeftUp, core.ActionLeftDown, core.ActionRightUp, core.ActionRightDown:
		m.session.Latch().Press(a.Switch())

	case core.ActionRestart:
		if err := m.session.Restart(m.ctx); err != nil {
			m.status = fmt.Sprintf("restart failed: %v", err)
		} else {
			m.status = ""
		}

	case core.ActionSnapshot:
		if err := clipboard.WriteAll(m.session.Framebuffer().String()); err != nil {
			m.status = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.status = "frame copied to clipboard"
		}
	}
	return m, nil
}

// scale picks the downscale that fits the frame into the terminal.
func (m Model) scale() int {
	fb := m.session.Framebuffer()
	if m.width == 0 || m.height == 0 {
		return 1
	}
	return FitScale(fb.Width(), fb.Height(), m.width, m.height-chromeRows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.State()

	var b strings.Builder
	b.WriteString(m.titleStyle.Render(fmt.Sprintf("%s   P1 %d : %d P2", m.session.Title(), st.ScoreLeft, st.ScoreRight)))
	b.WriteByte('\n')
	b.WriteString(m.frame.RenderFramebuffer(m.session.Framebuffer(), m.scale()))
	b.WriteByte('\n')
	b.WriteString(m.statusStyle.Render(m.statusLine(st)))
	b.WriteByte('\n')
	b.WriteString(m.helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine(st core.GameState) string {
	if m.status != "" {
		return m.status
	}
	if st.GameOver {
		return fmt.Sprintf("P%d WINS! press r to play again", st.Winner)
	}
	stats := m.session.Stats()
	return fmt.Sprintf("ticks %d  paints %d", stats.Ticks, stats.Paints)
}

// Run shows a started session in the local terminal until the user quits.
func Run(ctx context.Context, s *session.Session) error {
	p := tea.NewProgram(
		NewModel(ctx, s, nil),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
