package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/coldcall/pkg/game"
)

// gameEventMsg delivers a game event from the bridge goroutine.
type gameEventMsg struct {
	event game.Event
}

// programReadyMsg passes the *tea.Program to the model so it can start the
// bridge goroutine.
type programReadyMsg struct {
	program *tea.Program
}
