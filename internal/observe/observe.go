// Package observe provides the change-notification mechanism the stores
// expose to the UI layer: subscribers get a coalesced ping whenever the
// owning store mutates, and read fresh state back through the store's own
// query methods.
package observe

import "sync"

// Hub fans out change pings to subscribers. The zero value is ready to use.
// Pings carry no payload; they only mean "something changed, re-query".
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. The channel has capacity 1; pings arriving while one is
// already pending are coalesced, so a mutating store never blocks on a slow
// subscriber.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs == nil {
		h.subs = make(map[int]chan struct{})
	}
	id := h.nextID
	h.nextID++
	ch := make(chan struct{}, 1)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Notify pings every subscriber without blocking.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
