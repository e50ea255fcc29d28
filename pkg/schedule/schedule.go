// Package schedule provides the timer capability the game injects into its
// session: repeating and one-shot callbacks that can be cancelled. System
// backs it with the runtime's timers; Manual is a deterministic clock for
// tests.
package schedule

import (
	"sync"
	"time"
)

// Cancel stops a scheduled callback. It is safe to call more than once and
// from any goroutine.
type Cancel func()

// Scheduler registers callbacks to run later.
type Scheduler interface {
	// Every calls fn every d until cancelled.
	Every(d time.Duration, fn func()) Cancel
	// After calls fn once after d unless cancelled first.
	After(d time.Duration, fn func()) Cancel
}

// System returns a Scheduler backed by time.Ticker and time.AfterFunc.
// Callbacks run on their own goroutines.
func System() Scheduler { return systemScheduler{} }

type systemScheduler struct{}

func (systemScheduler) Every(d time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A cancel that races a pending tick wins.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (systemScheduler) After(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
