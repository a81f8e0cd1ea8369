package watch

import (
	"strings"
	"sync"
	"time"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionFinalized = "finalized"
)

// Event announces one committed change on a topic. Topics are
// "<collection>:<division>" for division-scoped data ("matches:1ra") or the
// bare collection name for league-wide data ("avisos").
type Event struct {
	Topic    string    `json:"topic"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Topic builds a division-scoped topic name.
func Topic(collection, division string) string {
	division = strings.TrimSpace(division)
	if division == "" {
		return collection
	}
	return collection + ":" + division
}

// Hub fans events out to subscribers. Delivery is best-effort: a subscriber
// whose buffer is full misses the event rather than blocking writers, so
// consumers must treat the feed as a change hint and re-fetch.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers interest in a topic. The returned cancel func must be
// called on view teardown; afterwards the channel is closed.
func (h *Hub) Subscribe(topic string, buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan Event]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[topic], ch)
			if len(h.subs[topic]) == 0 {
				delete(h.subs, topic)
			}
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers the event to every current subscriber of its topic.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[ev.Topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports active subscriptions for a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[topic])
}
