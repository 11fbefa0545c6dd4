// Package live fans successfully stored readings out to connected viewers.
// Delivery is best-effort and at-most-once: there is no backlog, no replay
// and no acknowledgment. A viewer that cannot keep up is dropped.
package live

import (
	"log/slog"
	"sync"

	"emonitor-backend/internal/db"
)

const subscriberBuffer = 256

// Hub is an in-process publish/subscribe fan-out. It holds no state beyond
// the current subscriber set.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
}

// Subscription is one viewer's stream of readings. Readings published while
// the subscription is open arrive on C in ingestion order. C is closed when
// the subscription ends, whether by Close or by falling behind.
type Subscription struct {
	C   chan db.SensorReading
	hub *Hub
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a new viewer. Readings published before Subscribe are
// not delivered retroactively.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		C:   make(chan db.SensorReading, subscriberBuffer),
		hub: h,
	}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	slog.Info("Live viewer connected", "subscribers", h.Count())
	return sub
}

// Close unregisters the subscription and closes C. Safe to call more than
// once, and safe to race with Publish dropping the subscription.
func (s *Subscription) Close() {
	s.hub.remove(s)
}

// Publish delivers one reading to every current subscriber without blocking.
// A subscriber whose buffer is full is removed from the hub.
func (h *Hub) Publish(r db.SensorReading) {
	h.mu.Lock()
	var dropped []*Subscription
	for sub := range h.subscribers {
		select {
		case sub.C <- r:
		default:
			dropped = append(dropped, sub)
		}
	}
	for _, sub := range dropped {
		delete(h.subscribers, sub)
		close(sub.C)
	}
	h.mu.Unlock()

	for range dropped {
		slog.Warn("Live viewer buffer full, dropping subscriber")
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[s]; ok {
		delete(h.subscribers, s)
		close(s.C)
	}
}
