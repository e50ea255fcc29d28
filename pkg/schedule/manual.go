package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run synchronously inside Advance, in due-time order, outside the
// scheduler's lock so they may register or cancel other timers. The zero
// value is ready to use.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	id       int
	due      time.Duration
	interval time.Duration // zero for one-shot
	fn       func()
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, fn func()) Cancel {
	return m.add(d, d, fn)
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	return m.add(d, 0, fn)
}

func (m *Manual) add(d, interval time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timers == nil {
		m.timers = make(map[int]*manualTimer)
	}
	m.nextID++
	id := m.nextID
	m.timers[id] = &manualTimer{id: id, due: m.now + d, interval: interval, fn: fn}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.timers, id)
	}
}

// Advance moves the clock forward by d, firing every callback that falls due
// on the way.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}

		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			delete(m.timers, next.id)
		}
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest timer due at or before target. Ties go to
// the timer registered first.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range m.timers {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}

// Pending returns the number of registered timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.timers)
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}
