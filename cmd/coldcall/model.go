package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/coldcall/pkg/game"
	"github.com/germanamz/coldcall/pkg/session"
)

// appModel is the root bubbletea model. It never mutates session state
// itself: every intent is forwarded to the game, and the view is redrawn
// from the snapshot the game returns or publishes.
type appModel struct {
	ctx          context.Context
	game         *game.Game
	state        session.State
	rules        session.Rules
	list         techniqueList
	viewport     viewport.Model
	keys         keyMap
	help         help.Model
	cancelBridge context.CancelFunc

	confirmReset   bool
	showChallenges bool
	challenges     string
	lastErr        string

	width  int
	height int
}

func newAppModel(ctx context.Context, g *game.Game) appModel {
	return appModel{
		ctx:            ctx,
		game:           g,
		state:          g.Snapshot(),
		rules:          g.Rules(),
		list:           newTechniqueList(g.Techniques()),
		viewport:       viewport.New(0, 0),
		keys:           newKeyMap(),
		help:           help.New(),
		showChallenges: true,
		challenges:     challengesMarkdown,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case programReadyMsg:
		m.cancelBridge = startBridge(m.ctx, msg.program, m.game.Events())
		return m, nil

	case gameEventMsg:
		m.state = msg.event.State
		switch msg.event.Kind {
		case game.EventRejected:
			m.lastErr = rejectionText(msg.event.Err)
		case game.EventStateChanged:
			m.lastErr = ""
		}
		// The notification and error rows come and go with events.
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.sections()...)
}

// sections returns the rendered blocks from top to bottom. The viewport is
// sized from the height of everything else.
func (m appModel) sections() []string {
	out := []string{renderHeader(m.state, m.rules, m.width), "", m.viewport.View()}

	if n := renderNotification(m.state); n != "" {
		out = append(out, "", n)
	}
	if m.lastErr != "" {
		out = append(out, errorStyle.Render(m.lastErr))
	}
	if m.showChallenges {
		out = append(out, "", m.challenges)
	}

	if m.confirmReset {
		out = append(out, "", confirmStyle.Render("Reset the game? All points, streak and used examples are lost."))
		out = append(out, m.help.View(confirmKeys{m.keys}))
	} else {
		out = append(out, "", m.help.View(m.keys))
	}

	return out
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	initMarkdownRenderer(m.width - 4)
	m.challenges = renderMarkdown(challengesMarkdown)
	m.help.Width = m.width
	m.recalcLayout()

	return *m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.confirmReset {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmReset = false
			m.state = m.game.Reset()
			m.lastErr = ""
			m.list.cursor = 0
			m.recalcLayout()
		case key.Matches(msg, m.keys.Cancel):
			m.confirmReset = false
			m.recalcLayout()
		}
		return *m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		m.list.up()
		m.refreshList()

	case key.Matches(msg, m.keys.Down):
		m.list.down()
		m.refreshList()

	case key.Matches(msg, m.keys.Use):
		m.useSelected()

	case key.Matches(msg, m.keys.Timer):
		m.state = m.game.ToggleTimer()

	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
		m.recalcLayout()

	case key.Matches(msg, m.keys.Challenges):
		m.showChallenges = !m.showChallenges
		m.recalcLayout()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.recalcLayout()

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return *m, cmd
	}

	return *m, nil
}

// useSelected forwards the example under the cursor to the game. The row is
// already shown as used when it was, but the game stays the authority and
// its rejection is displayed as is.
func (m *appModel) useSelected() {
	ref, ok := m.list.selected()
	if !ok {
		return
	}

	st, err := m.game.UseExample(ref.technique, ref.index)
	m.state = st
	m.lastErr = ""
	if err != nil {
		m.lastErr = rejectionText(err)
	}
	m.recalcLayout()
}

func (m *appModel) quit() (tea.Model, tea.Cmd) {
	if m.cancelBridge != nil {
		m.cancelBridge()
		m.cancelBridge = nil
	}
	return *m, tea.Quit
}

// recalcLayout sizes the viewport to the space left by the other sections
// and redraws the list.
func (m *appModel) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.viewport.Width = m.width
	m.viewport.Height = 1
	m.refreshList()

	other := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, m.sections()...)) - 1
	m.viewport.Height = max(m.height-other, 3)
	m.refreshList()
}

// refreshList re-renders the list content and scrolls so the cursor row
// stays visible.
func (m *appModel) refreshList() {
	content, cursorLine := m.list.render(m.state, m.width)
	m.viewport.SetContent(content)

	switch {
	case cursorLine < m.viewport.YOffset:
		m.viewport.SetYOffset(cursorLine)
	case m.viewport.Height > 0 && cursorLine >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

func rejectionText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrAlreadyUsed):
		return "That example is already used."
	case errors.Is(err, session.ErrInvalidIndex):
		return "That example does not exist."
	case errors.Is(err, session.ErrUnknownTechnique):
		return "Unknown technique."
	default:
		return "error: " + err.Error()
	}
}
