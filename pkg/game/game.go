package game

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/germanamz/coldcall/pkg/schedule"
	"github.com/germanamz/coldcall/pkg/session"
	"github.com/germanamz/coldcall/pkg/technique"
)

// Game wires a session engine to the timers that drive it and publishes
// every change on an EventBus. It owns at most one tick registration, tied
// to the running flag, and at most one pending notification clear.
type Game struct {
	engine   *session.Engine
	sched    schedule.Scheduler
	events   *EventBus
	logger   *slog.Logger
	now      func() time.Time
	tick     time.Duration
	notifTTL time.Duration

	// mu serializes commands and timer callbacks so that each engine change
	// and its timer bookkeeping apply as one step, in arrival order.
	mu        sync.Mutex
	tickGen   uint64
	stopTick  schedule.Cancel
	clearGen  uint64
	stopClear schedule.Cancel
	closed    bool
}

// Option configures a Game.
type Option func(*Game)

// WithScheduler injects the timer implementation. Defaults to schedule.System.
func WithScheduler(s schedule.Scheduler) Option {
	return func(g *Game) { g.sched = s }
}

// WithLogger sets the logger used for rejections and milestones.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock overrides the timestamp source for events.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New validates cfg and builds a Game scoring against table.
func New(cfg Config, table *technique.Table, opts ...Option) (*Game, error) {
	if table == nil {
		return nil, errors.New("game: technique table is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tick, _ := cfg.TickInterval()
	ttl, _ := cfg.NotificationTTL()

	g := &Game{
		engine:   session.New(table, session.WithRules(cfg.Rules)),
		sched:    schedule.System(),
		events:   NewEventBus(),
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
		tick:     tick,
		notifTTL: ttl,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Events returns the bus on which state changes are published.
func (g *Game) Events() *EventBus { return g.events }

// Techniques returns the technique table.
func (g *Game) Techniques() *technique.Table { return g.engine.Table() }

// Rules returns the scoring rules in effect.
func (g *Game) Rules() session.Rules { return g.engine.Rules() }

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() session.State { return g.engine.Snapshot() }

// UseExample scores one example. Rejections are logged, published as
// EventRejected and returned; they never change the state.
func (g *Game) UseExample(name string, index int) (session.State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	prevLevel := g.engine.Snapshot().Level

	st, err := g.engine.UseExample(name, index)
	if err != nil {
		g.logRejection(name, index, err)
		g.publish(Event{Kind: EventRejected, State: st, Err: err})
		return st, err
	}

	g.logger.Debug("example used",
		slog.String("technique", name),
		slog.Int("index", index),
		slog.Int("points", st.Points),
		slog.Int("streak", st.Streak),
	)
	if st.Level > prevLevel {
		g.logger.Info("level up", slog.Int("level", st.Level), slog.Int("points", st.Points))
	}

	g.publish(Event{Kind: EventStateChanged, State: st})
	g.notify(st)

	return st, nil
}

// ToggleTimer starts or pauses the session timer. Any previous tick
// registration is cancelled before a new one is created.
func (g *Game) ToggleTimer() session.State {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.engine.ToggleTimer()
	g.syncTicker(st.Running)

	g.logger.Debug("timer toggled", slog.Bool("running", st.Running), slog.Int("elapsed", st.ElapsedSeconds))
	g.publish(Event{Kind: EventStateChanged, State: st})

	return st
}

// Reset restores the session defaults, stops the timer and shows the reset
// notification.
func (g *Game) Reset() session.State {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.engine.Reset()
	g.syncTicker(false)

	g.logger.Info("session reset")
	g.publish(Event{Kind: EventStateChanged, State: st})
	g.notify(st)

	return st
}

// ClearNotification empties the notification now and drops the pending
// auto-clear.
func (g *Game) ClearNotification() session.State {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancelClear()
	st := g.engine.ClearNotification()
	g.publish(Event{Kind: EventNotificationCleared, State: st})

	return st
}

// Close stops all timers and closes every subscription. Commands issued
// after Close still update the state but no timers are started.
func (g *Game) Close() error {
	g.mu.Lock()
	g.closed = true
	g.cancelTick()
	g.cancelClear()
	g.mu.Unlock()

	g.events.Close()
	return nil
}

// syncTicker makes the tick registration match running. Callers hold mu.
func (g *Game) syncTicker(running bool) {
	g.cancelTick()
	if !running || g.closed {
		return
	}

	gen := g.tickGen
	g.stopTick = g.sched.Every(g.tick, func() { g.onTick(gen) })
}

func (g *Game) cancelTick() {
	g.tickGen++
	if g.stopTick != nil {
		g.stopTick()
		g.stopTick = nil
	}
}

func (g *Game) onTick(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// A tick that raced a pause or a newer registration is dropped.
	if gen != g.tickGen || g.closed {
		return
	}

	st := g.engine.Tick()
	g.publish(Event{Kind: EventTick, State: st})
}

// notify publishes the notification held by st and replaces any pending
// clear with a fresh one. Callers hold mu.
func (g *Game) notify(st session.State) {
	if st.Notification == "" {
		return
	}

	g.publish(Event{Kind: EventNotification, State: st})

	g.cancelClear()
	if g.closed {
		return
	}

	gen := g.clearGen
	g.stopClear = g.sched.After(g.notifTTL, func() { g.onClear(gen) })
}

func (g *Game) cancelClear() {
	g.clearGen++
	if g.stopClear != nil {
		g.stopClear()
		g.stopClear = nil
	}
}

func (g *Game) onClear(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.clearGen || g.closed {
		return
	}
	g.stopClear = nil

	st := g.engine.ClearNotification()
	g.publish(Event{Kind: EventNotificationCleared, State: st})
}

func (g *Game) publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = g.now()
	}
	g.events.Publish(e)
}

func (g *Game) logRejection(name string, index int, err error) {
	attrs := []any{
		slog.String("technique", name),
		slog.Int("index", index),
		slog.String("error", err.Error()),
	}

	switch {
	case errors.Is(err, session.ErrUnknownTechnique):
		g.logger.Warn("use rejected", attrs...)
	default:
		g.logger.Debug("use rejected", attrs...)
	}
}

// Summary returns a one-line description of the session.
func Summary(st session.State) string {
	return fmt.Sprintf("points %d · level %d · streak %d · examples used %d · time %s",
		st.Points, st.Level, st.Streak, st.UsedCount(), session.FormatElapsed(st.ElapsedSeconds))
}
