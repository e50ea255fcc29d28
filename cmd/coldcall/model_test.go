package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/coldcall/pkg/game"
	"github.com/germanamz/coldcall/pkg/schedule"
	"github.com/germanamz/coldcall/pkg/session"
	"github.com/germanamz/coldcall/pkg/technique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *technique.Table {
	t.Helper()

	tbl, err := technique.NewTable(
		technique.Technique{Name: "Mirroring", Points: 5, Examples: []string{"m0", "m1", "m2", "m3"}},
		technique.Technique{Name: "Labeling", Points: 10, Examples: []string{"l0", "l1"}},
	)
	require.NoError(t, err)
	return tbl
}

func newTestModel(t *testing.T) (appModel, *game.Game, *schedule.Manual) {
	t.Helper()

	sched := &schedule.Manual{}
	g, err := game.New(game.DefaultConfig(), testTable(t), game.WithScheduler(sched))
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })

	m := newAppModel(context.Background(), g)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})

	return m, g, sched
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()

	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok, "Update returned %T", next)
	return out
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	sched := &schedule.Manual{}
	g, err := game.New(game.DefaultConfig(), testTable(t), game.WithScheduler(sched))
	require.NoError(t, err)
	defer func() { _ = g.Close() }()

	m := newAppModel(context.Background(), g)
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_ViewShowsScoreAndList(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, gameTitle)
	assert.Contains(t, view, "Total Points: 0")
	assert.Contains(t, view, "Level: 1")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "Mirroring (5 points)")
	assert.Contains(t, view, "[Use]")
	assert.Contains(t, view, bonusRuleText(session.DefaultRules()))
}

func TestModel_LayoutFillsHeightAsEventsArrive(t *testing.T) {
	m, g, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 40, lipgloss.Height(m.View()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.state.Notification)
	assert.Equal(t, 40, lipgloss.Height(m.View()))

	// Auto-clear delivered through the bridge.
	m = update(t, m, gameEventMsg{event: game.Event{Kind: game.EventNotificationCleared, State: g.ClearNotification()}})
	assert.Empty(t, m.state.Notification)
	assert.Equal(t, 40, lipgloss.Height(m.View()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, m.lastErr)
	assert.Equal(t, 40, lipgloss.Height(m.View()))

	m = update(t, m, gameEventMsg{event: game.Event{Kind: game.EventStateChanged, State: g.Snapshot()}})
	assert.Empty(t, m.lastErr)
	assert.Equal(t, 40, lipgloss.Height(m.View()))
}

func TestModel_UseSelected(t *testing.T) {
	m, g, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// First use earns the base points plus the streak bonus.
	assert.Equal(t, 25, m.state.Points)
	assert.True(t, m.state.IsUsed("Mirroring", 0))
	assert.Equal(t, g.Snapshot().Points, m.state.Points)
	assert.Empty(t, m.lastErr)
	assert.Contains(t, m.View(), "[Used]")
	assert.Contains(t, m.View(), session.StreakNotification(20))
}

func TestModel_UseAlreadyUsed(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 25, m.state.Points)
	assert.Equal(t, "That example is already used.", m.lastErr)
	assert.Contains(t, m.View(), "That example is already used.")
}

func TestModel_MoveCursor(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, keyRune('j'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, keyRune(' '))

	assert.True(t, m.state.IsUsed("Mirroring", 2))
	assert.False(t, m.state.IsUsed("Mirroring", 0))

	m = update(t, m, keyRune('k'))
	ref, ok := m.list.selected()
	require.True(t, ok)
	assert.Equal(t, 1, ref.index)
}

func TestModel_ToggleTimer(t *testing.T) {
	m, g, sched := newTestModel(t)

	m = update(t, m, keyRune('s'))
	assert.True(t, m.state.Running)

	sched.Advance(3 * time.Second)
	assert.Equal(t, 3, g.Snapshot().ElapsedSeconds)

	m = update(t, m, keyRune('s'))
	assert.False(t, m.state.Running)

	sched.Advance(3 * time.Second)
	assert.Equal(t, 3, g.Snapshot().ElapsedSeconds)
}

func TestModel_ResetNeedsConfirmation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 25, m.state.Points)

	m = update(t, m, keyRune('r'))
	assert.True(t, m.confirmReset)
	assert.Contains(t, m.View(), "Reset the game?")

	m = update(t, m, keyRune('n'))
	assert.False(t, m.confirmReset)
	assert.Equal(t, 25, m.state.Points)

	m = update(t, m, keyRune('r'))
	m = update(t, m, keyRune('y'))
	assert.False(t, m.confirmReset)
	assert.Equal(t, 0, m.state.Points)
	assert.Equal(t, 1, m.state.Level)
	assert.Equal(t, session.NotifyReset, m.state.Notification)
	assert.Zero(t, m.state.UsedCount())
}

func TestModel_ConfirmIgnoresOtherKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, keyRune('r'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.confirmReset)
	assert.Equal(t, 0, m.state.Points)
}

func TestModel_ToggleChallenges(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.True(t, m.showChallenges)
	require.NotEmpty(t, m.challenges)
	assert.Contains(t, m.View(), m.challenges)

	m = update(t, m, keyRune('c'))
	assert.False(t, m.showChallenges)
	assert.NotContains(t, m.View(), m.challenges)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, _, _ := newTestModel(t)

			cancelled := false
			m.cancelBridge = func() { cancelled = true }

			next, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, cancelled)
			assert.Nil(t, next.(appModel).cancelBridge)
		})
	}
}

func TestModel_GameEvents(t *testing.T) {
	m, _, _ := newTestModel(t)

	st := session.NewState()
	st.ElapsedSeconds = 65
	m = update(t, m, gameEventMsg{event: game.Event{Kind: game.EventTick, State: st}})
	assert.Contains(t, m.View(), "01:05")

	m = update(t, m, gameEventMsg{event: game.Event{
		Kind:  game.EventRejected,
		State: st,
		Err:   fmt.Errorf("session: use %q[%d]: %w", "Nope", 0, session.ErrUnknownTechnique),
	}})
	assert.Equal(t, "Unknown technique.", m.lastErr)

	m = update(t, m, gameEventMsg{event: game.Event{Kind: game.EventStateChanged, State: st}})
	assert.Empty(t, m.lastErr)
}

func TestRejectionText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", session.ErrAlreadyUsed), "That example is already used."},
		{fmt.Errorf("wrap: %w", session.ErrInvalidIndex), "That example does not exist."},
		{fmt.Errorf("wrap: %w", session.ErrUnknownTechnique), "Unknown technique."},
		{errors.New("boom"), "error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rejectionText(tt.err))
	}
}
