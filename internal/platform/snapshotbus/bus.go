// Package snapshotbus is the in-process change feed between the services that
// write the roster and the ones that rank it. Signals carry no payload: a
// delivery means "re-read the store", so subscribers always compute from a
// fresh snapshot and a dropped signal costs nothing once a later one lands.
package snapshotbus

import (
	"log/slog"
	"sync"
)

type Bus struct {
	mu          sync.RWMutex
	subscribers []chan struct{}
	logger      *slog.Logger
}

func New(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Notify signals every subscriber. A subscriber with a signal already pending
// is skipped; coalescing back-to-back changes into one recompute is the point.
func (b *Bus) Notify() {
	b.mu.RLock()
	subs := append([]chan struct{}(nil), b.subscribers...)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub <- struct{}{}:
		default:
		}
	}

	if b.logger != nil {
		b.logger.Debug("roster change signaled",
			"event", "snapshotbus_notify",
			"module", "internal/platform/snapshotbus",
			"layer", "platform",
			"subscribers", len(subs),
		)
	}
}

// Subscribe registers a change channel. The returned cancel function removes
// the subscription and closes the channel.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.removeSubscriber(ch)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Bus) removeSubscriber(target chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	filtered := make([]chan struct{}, 0, len(b.subscribers))
	for _, item := range b.subscribers {
		if item != target {
			filtered = append(filtered, item)
		}
	}
	b.subscribers = filtered
}
