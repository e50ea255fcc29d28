package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/coldcall/pkg/game"
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// startBridge launches the event watcher goroutine. It only calls p.Send()
// and never touches model state directly. The returned cancel function stops
// the watcher without waiting for it: the model calls it from Update, where
// a pending p.Send could not complete.
func startBridge(ctx context.Context, p sender, events *game.EventBus) context.CancelFunc {
	bridgeCtx, cancel := context.WithCancel(ctx)
	sub := events.Subscribe(64)

	go func() {
		defer events.Unsubscribe(sub)
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				p.Send(gameEventMsg{event: ev})
			}
		}
	}()

	return cancel
}
