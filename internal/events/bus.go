// Package events provides the synchronous in-process publish/subscribe bus
// that connects the storefront models, the checkout flow, and the views.
//
// Dispatch is synchronous: Publish invokes every currently-subscribed handler
// in subscription order before returning. Handlers may publish further events
// and may unsubscribe (themselves or others) from within a dispatch; the
// handler list is snapshotted before iteration, so a handler subscribed
// during a dispatch is first invoked on the next publish.
package events

import (
	"slices"
	"sync"
)

// Topic identifies an event kind on the bus. The set of topics is closed:
// every topic the application uses is declared in this package together with
// its payload shape.
type Topic string

// Handler consumes a published payload. Use On to subscribe with a
// payload-type check at the boundary.
type Handler func(payload any)

// Subscription identifies a single registered handler. It is returned by
// Subscribe and accepted by Unsubscribe.
type Subscription struct {
	topic Topic
	id    uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// Bus is a synchronous publish/subscribe mediator. The zero value is not
// usable; construct with NewBus.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers fn for topic and returns a Subscription that can be
// passed to Unsubscribe.
func (b *Bus) Subscribe(topic Topic, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], subscriber{id: b.nextID, fn: fn})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown subscriptions
// are ignored. Safe to call from within a handler.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.topic]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.topic] = slices.Delete(slices.Clone(list), i, i+1)
			return
		}
	}
}

// Publish delivers payload to every handler subscribed to topic, in
// subscription order. Publishing a topic with no subscribers is a no-op.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.Lock()
	snapshot := slices.Clone(b.subs[topic])
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(payload)
	}
}

// On subscribes fn for topic, invoking it only when the published payload is
// of type T. Payloads of any other type are dropped, which keeps the
// payload-shape contract checked at the subscribe boundary.
func On[T any](b *Bus, topic Topic, fn func(T)) Subscription {
	return b.Subscribe(topic, func(payload any) {
		if v, ok := payload.(T); ok {
			fn(v)
		}
	})
}
