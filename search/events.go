package search

import (
	"sync"

	"github.com/google/uuid"
)

const (
	EventInserted = "inserted"
	EventDeleted  = "deleted"
)

// Event notifies subscribers that one identity's records changed.
// Subscribers are expected to re-query the store, not to reconstruct
// state from the event.
type Event struct {
	Kind     string `json:"kind"`
	RecordID int64  `json:"record_id"`
}

// Hub fans store-change events out to per-identity subscribers. It is
// the explicit replacement for the original frontend's implicit reactive
// queries: mutations publish here, list views refresh on receipt.
type Hub struct {
	mu   sync.Mutex
	subs map[int64]map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: map[int64]map[string]chan Event{}}
}

// Subscribe registers a listener for identity's changes. The returned
// token cancels the subscription via Unsubscribe.
func (h *Hub) Subscribe(identity int64) (string, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	token := uuid.NewString()
	ch := make(chan Event, 16)
	if h.subs[identity] == nil {
		h.subs[identity] = map[string]chan Event{}
	}
	h.subs[identity][token] = ch
	return token, ch
}

func (h *Hub) Unsubscribe(identity int64, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if chans, ok := h.subs[identity]; ok {
		if ch, ok := chans[token]; ok {
			delete(chans, token)
			close(ch)
		}
		if len(chans) == 0 {
			delete(h.subs, identity)
		}
	}
}

// Publish delivers ev to identity's subscribers. Slow subscribers drop
// events instead of blocking mutations; a dropped event costs nothing
// because receivers re-query anyway.
func (h *Hub) Publish(identity int64, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[identity] {
		select {
		case ch <- ev:
		default:
		}
	}
}
