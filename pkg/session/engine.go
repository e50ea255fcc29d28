// Package session implements the scoring engine of a practice session: the
// owned State and the commands that mutate it. Commands are deterministic,
// run to completion under the engine's lock, and return a snapshot of the
// resulting State. Timers are not owned here; see package game.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/germanamz/coldcall/pkg/technique"
)

// Rejections returned by UseExample. They are validation results, never
// fatal, and leave the State unchanged.
var (
	ErrUnknownTechnique = errors.New("unknown technique")
	ErrInvalidIndex     = errors.New("example index out of range")
	ErrAlreadyUsed      = errors.New("example already used")
)

// Notification texts.
const (
	NotifyReset = "Game reset!"
)

// PointsNotification is emitted on every successful use.
func PointsNotification(points int) string {
	return fmt.Sprintf("+%d points!", points)
}

// StreakNotification is emitted when a streak bonus is awarded.
func StreakNotification(bonus int) string {
	return fmt.Sprintf("Streak Bonus: +%d points!", bonus)
}

// LevelNotification announces the level just reached.
func LevelNotification(level int) string {
	return fmt.Sprintf("Level Up! You're now level %d", level)
}

// Engine owns one session State. It is safe for concurrent use; every
// command is a critical section applied in arrival order.
type Engine struct {
	table *technique.Table
	rules Rules

	mu    sync.Mutex
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules overrides the scoring rules. Zero fields fall back to
// DefaultRules.
func WithRules(r Rules) Option {
	return func(e *Engine) { e.rules = r.WithDefaults() }
}

// New creates an Engine scoring against table, starting from NewState.
func New(table *technique.Table, opts ...Option) *Engine {
	e := &Engine{
		table: table,
		rules: DefaultRules(),
		state: NewState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the scoring rules in effect.
func (e *Engine) Rules() Rules { return e.rules }

// Table returns the technique table the engine scores against.
func (e *Engine) Table() *technique.Table { return e.table }

// Snapshot returns a copy of the current State.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.clone()
}

// IsUsed reports whether the example has been marked used this session.
func (e *Engine) IsUsed(name string, index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.IsUsed(name, index)
}

// UseExample scores one use of the example at index of the named technique.
//
// The base award always sets the "+N points!" notification; a streak bonus
// and then a level-up may overwrite it within the same call, so the last one
// wins. The level threshold is compared against the points after the base
// award and before the streak bonus, and at most one level is gained per
// call.
//
// On rejection the returned State is the unchanged current state and the
// error wraps ErrUnknownTechnique, ErrInvalidIndex or ErrAlreadyUsed.
func (e *Engine) UseExample(name string, index int) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tech, ok := e.table.Lookup(name)
	if !ok {
		return e.state.clone(), fmt.Errorf("session: use %q[%d]: %w", name, index, ErrUnknownTechnique)
	}
	if !tech.HasExample(index) {
		return e.state.clone(), fmt.Errorf("session: use %q[%d]: %w", name, index, ErrInvalidIndex)
	}
	if e.state.IsUsed(name, index) {
		return e.state.clone(), fmt.Errorf("session: use %q[%d]: %w", name, index, ErrAlreadyUsed)
	}

	s := &e.state

	awarded := s.Points + tech.Points
	s.Points = awarded
	s.Notification = PointsNotification(tech.Points)

	if e.rules.bonusDue(s.Streak) {
		s.Points += e.rules.StreakBonus
		s.Notification = StreakNotification(e.rules.StreakBonus)
	}
	s.Streak++

	if awarded >= s.Level*e.rules.PointsPerLevel {
		s.Level++
		s.Notification = LevelNotification(s.Level)
	}

	s.markUsed(name, index)

	return s.clone(), nil
}

// ToggleTimer flips the running flag.
func (e *Engine) ToggleTimer() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Running = !e.state.Running
	return e.state.clone()
}

// Tick advances the elapsed time by one second while running.
func (e *Engine) Tick() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running {
		e.state.ElapsedSeconds++
	}
	return e.state.clone()
}

// Reset restores the defaults and emits the reset notification.
func (e *Engine) Reset() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = NewState()
	e.state.Notification = NotifyReset
	return e.state.clone()
}

// ClearNotification empties the notification slot.
func (e *Engine) ClearNotification() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Notification = ""
	return e.state.clone()
}
