package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual_Every(t *testing.T) {
	var m Manual
	var n int

	cancel := m.Every(time.Second, func() { n++ })

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, n)

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, n)

	m.Advance(3 * time.Second)
	assert.Equal(t, 4, n)

	cancel()
	m.Advance(5 * time.Second)
	assert.Equal(t, 4, n)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_After(t *testing.T) {
	var m Manual
	var fired int

	m.After(3*time.Second, func() { fired++ })

	m.Advance(2 * time.Second)
	assert.Equal(t, 0, fired)

	m.Advance(10 * time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 12*time.Second, m.Now())
}

func TestManual_CancelBeforeDue(t *testing.T) {
	var m Manual
	var fired bool

	cancel := m.After(time.Second, func() { fired = true })
	cancel()
	cancel()

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManual_OrderAndReentrancy(t *testing.T) {
	var m Manual
	var order []string

	m.After(2*time.Second, func() { order = append(order, "b") })
	m.After(time.Second, func() {
		order = append(order, "a")
		// Registering from inside a callback must not deadlock.
		m.After(500*time.Millisecond, func() { order = append(order, "a2") })
	})

	m.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "a2", "b"}, order)
}

func TestSystem_Every(t *testing.T) {
	var n atomic.Int32

	cancel := System().Every(5*time.Millisecond, func() { n.Add(1) })
	assert.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	cancel()
	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, n.Load(), stopped+1)
}

func TestSystem_After(t *testing.T) {
	var fired atomic.Bool

	System().After(5*time.Millisecond, func() { fired.Store(true) })
	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)
}

func TestSystem_AfterCancelled(t *testing.T) {
	var fired atomic.Bool

	cancel := System().After(20*time.Millisecond, func() { fired.Store(true) })
	cancel()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}
