package game

import (
	"sync"
	"time"

	"github.com/germanamz/coldcall/pkg/session"
)

// EventKind identifies the type of game event.
type EventKind string

const (
	EventStateChanged        EventKind = "state_changed"
	EventTick                EventKind = "tick"
	EventNotification        EventKind = "notification"
	EventNotificationCleared EventKind = "notification_cleared"
	EventRejected            EventKind = "rejected"
)

// Event is an immutable notification of game activity. State is the
// snapshot taken right after the change.
type Event struct {
	Kind      EventKind
	Timestamp time.Time
	State     session.State
	// Err is set for EventRejected.
	Err error
}

// Subscription receives events from an EventBus.
type Subscription struct {
	C  <-chan Event
	ch chan Event
}

// EventBus fans out events to all active subscribers. It is safe for
// concurrent use.
type EventBus struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
}

// NewEventBus creates an EventBus ready for use.
func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe creates a new subscription with the given channel buffer size.
// The caller should read from sub.C and eventually call Unsubscribe. After
// Close, the returned subscription's channel is already closed.
func (b *EventBus) Subscribe(bufSize int) *Subscription {
	ch := make(chan Event, bufSize)
	sub := &Subscription{C: ch, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub] = struct{}{}

	return sub
}

// Unsubscribe removes the subscription and closes its channel.
func (b *EventBus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Publish sends an event to all subscribers. If a subscriber's buffer is full
// the event is dropped for that subscriber so a slow renderer never stalls
// the timers.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.ch <- e:
		default:
		}
	}
}

// Close unsubscribes everyone. Later publishes are no-ops.
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
}
