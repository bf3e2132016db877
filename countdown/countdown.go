// SPDX-License-Identifier: GPL-3.0-or-later
package countdown

import (
	"sync"
	"time"

	"github.com/driftbox/go-driftbox/log"

	"github.com/sirupsen/logrus"
)

// Timer is an expiring clock counting down whole seconds. It starts stopped;
// Reset arms it (and re-arms an expired one). The expiry handler is read at
// fire time, not captured at arm time, so rebinding it mid-flight is
// observed.
type Timer struct {
	mu        sync.Mutex
	remaining int
	running   bool
	onExpire  func()

	stop     chan struct{}
	stopOnce sync.Once

	l *logrus.Logger
}

func NewTimer() *Timer {
	t := &Timer{
		stop: make(chan struct{}),
		l:    log.Logger(log.LOG_TIMER),
	}

	go t.run()
	return t
}

func (t *Timer) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.tick()
		case <-t.stop:
			return
		}
	}
}

func (t *Timer) tick() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return
	}

	// Expired. Flipping running off here guarantees the handler fires once
	// per run-down even if ticks keep arriving.
	t.remaining = 0
	t.running = false
	handler := t.onExpire
	t.mu.Unlock()

	t.l.Debug("Countdown expired")
	if handler != nil {
		handler()
	}
}

// Reset arms the timer with a fresh budget, reviving it if it had expired.
func (t *Timer) Reset(minutes int) {
	t.mu.Lock()
	t.remaining = minutes * 60
	t.running = true
	t.mu.Unlock()

	t.l.WithFields(logrus.Fields{"minutes": minutes}).Debug("Countdown reset")
}

func (t *Timer) SetOnExpire(handler func()) {
	t.mu.Lock()
	t.onExpire = handler
	t.mu.Unlock()
}

func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}
