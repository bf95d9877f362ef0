package store

import "sync"

// EventType names mirror the browser events the stores replaced.
type EventType string

const (
	EventInventoryUpdate EventType = "inventoryUpdate"
	EventCloudSync       EventType = "pharmacy-cloud-sync"
	EventNewMessage      EventType = "newMessage"
	EventMessageUpdate   EventType = "messageUpdate"
	EventNewOrder        EventType = "newOrder"
	EventOrderUpdate     EventType = "orderUpdate"
)

type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// Bus is an in-process publish/subscribe fan-out. Publish never blocks;
// a subscriber that falls behind misses events rather than stalling the
// mutating caller.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func must be
// called when done; afterwards the channel is closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers evt to every subscriber with room in its buffer.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
