package main

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/coldcall/pkg/game"
	"github.com/germanamz/coldcall/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSender) received() []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tea.Msg(nil), s.msgs...)
}

func TestStartBridge_ForwardsEvents(t *testing.T) {
	bus := game.NewEventBus()
	s := &recordingSender{}

	cancel := startBridge(context.Background(), s, bus)
	defer cancel()

	st := session.NewState()
	st.Points = 42
	bus.Publish(game.Event{Kind: game.EventStateChanged, State: st})

	require.Eventually(t, func() bool { return len(s.received()) == 1 }, time.Second, 5*time.Millisecond)

	msg, ok := s.received()[0].(gameEventMsg)
	require.True(t, ok)
	assert.Equal(t, game.EventStateChanged, msg.event.Kind)
	assert.Equal(t, 42, msg.event.State.Points)
}

func TestStartBridge_StopsWhenBusCloses(t *testing.T) {
	bus := game.NewEventBus()
	s := &recordingSender{}

	cancel := startBridge(context.Background(), s, bus)
	defer cancel()

	bus.Close()
	bus.Publish(game.Event{Kind: game.EventTick})

	assert.Never(t, func() bool { return len(s.received()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}
