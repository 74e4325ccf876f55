package events

import (
	"sort"
	"sync"
)

// Handler receives events for one topic.
type Handler func(Event)

// Bus fans events out to subscribers of their topic. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic]map[uint64]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[uint64]Handler)}
}

// Subscribe registers h for topic. The returned function removes it and is
// safe to call more than once.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]Handler)
	}
	b.subs[topic][id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[topic], id)
			if len(b.subs[topic]) == 0 {
				delete(b.subs, topic)
			}
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev to every current subscriber of its topic. Handlers
// may subscribe or unsubscribe while being called; a handler removed by an
// earlier one in the same Publish is skipped, and one added is not called
// until the next Publish.
func (b *Bus) Publish(ev Event) {
	topic := ev.Topic()

	b.mu.RLock()
	set := b.subs[topic]
	ids := make([]uint64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	b.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		b.mu.RLock()
		h, ok := b.subs[topic][id]
		b.mu.RUnlock()
		if ok {
			h(ev)
		}
	}
}

// ListenerCount returns the number of subscribers for topic.
func (b *Bus) ListenerCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Len returns the number of subscribers across all topics.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, set := range b.subs {
		n += len(set)
	}
	return n
}
