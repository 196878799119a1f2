package events

import (
	"sync"
	"sync/atomic"
	"time"

	evbus "github.com/asaskevich/EventBus"
)

// Bus is an in-process event bus. Delivery is synchronous: SendEvent
// returns after every handler has run.
type Bus struct {
	bus evbus.Bus
	now func() time.Time

	mu       sync.RWMutex
	closed   bool
	sequence atomic.Int64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		bus: evbus.New(),
		now: time.Now,
	}
}

// SendEvent stamps the event with a timestamp and sequence number and
// publishes it on its own topic and on the catch-all topic.
func (b *Bus) SendEvent(event Event) error {
	if b == nil {
		return ErrBusClosed
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	event.SequenceID = b.sequence.Add(1)

	b.bus.Publish(string(event.Type), event)
	b.bus.Publish(topicAll, event)
	return nil
}

// Subscribe registers fn for one event type
func (b *Bus) Subscribe(eventType EventType, fn Handler) error {
	return b.subscribe(string(eventType), fn)
}

// SubscribeAll registers fn for every event type
func (b *Bus) SubscribeAll(fn Handler) error {
	return b.subscribe(topicAll, fn)
}

func (b *Bus) subscribe(topic string, fn Handler) error {
	if b == nil {
		return ErrBusClosed
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	// EventBus matches handlers by reflection, so hand it a plain func
	return b.bus.Subscribe(topic, func(e Event) { fn(e) })
}

// Close marks the bus closed. It is safe to call more than once.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
