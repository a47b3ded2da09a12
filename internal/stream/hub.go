// Package stream is the in-process pub/sub channel behind the realtime scan
// feed. Delivery is best-effort: slow subscribers drop events rather than
// block the publisher.
package stream

import "sync"

// Hub fans events out to subscriber channels.
type Hub struct {
	mu   sync.Mutex
	subs map[chan interface{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan interface{}]struct{})}
}

// Subscribe registers a new subscriber with the given buffer size.
func (h *Hub) Subscribe(buffer int) chan interface{} {
	ch := make(chan interface{}, buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes the channel.
func (h *Hub) Unsubscribe(ch chan interface{}) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers the event to every subscriber, skipping full buffers.
func (h *Hub) Publish(event interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; the feed is advisory only.
		}
	}
}

// SubscriberCount reports the current number of subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
