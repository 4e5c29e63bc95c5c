package event

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Bus errors.
var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidTopic is returned when subscribing with an empty topic.
	ErrInvalidTopic = errors.New("topic cannot be empty")
)

// Subscription represents an active subscription on a Bus.
type Subscription struct {
	id        string
	pattern   string
	handler   Handler
	cancelled atomic.Bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string { return s.id }

// Pattern returns the topic pattern the subscription matches.
func (s *Subscription) Pattern() string { return s.pattern }

// Cancel permanently stops delivery to this subscription.
func (s *Subscription) Cancel() {
	s.cancelled.Store(true)
}

// Stats reports bus delivery counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// Bus is a synchronous topic-based event bus.
//
// Handlers run on the publisher's goroutine in subscription order. A
// panicking handler is recovered and counted; remaining handlers still run.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for topics matching the given pattern.
// Patterns are exact topics or prefix wildcards ("scroll.*", "*").
func (b *Bus) Subscribe(pattern string, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: handler,
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function handler.
func (b *Bus) SubscribeFunc(pattern string, fn HandlerFunc) (*Subscription, error) {
	return b.Subscribe(pattern, fn)
}

// Unsubscribe cancels and removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers a payload to all subscriptions matching the topic.
func (b *Bus) Publish(topic string, payload any) {
	b.eventsPublished.Add(1)

	ev := Envelope{
		ID:      uuid.NewString(),
		Topic:   topic,
		Time:    time.Now(),
		Payload: payload,
	}

	b.mu.RLock()
	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, sub := range subs {
		if sub.cancelled.Load() {
			continue
		}
		if !topicMatches(sub.pattern, topic) {
			continue
		}
		b.deliver(sub, ev)
	}
}

// deliver invokes one handler with panic recovery.
func (b *Bus) deliver(sub *Subscription, ev Envelope) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
		}
	}()
	sub.handler.Handle(ev)
	b.eventsDelivered.Add(1)
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := 0
	for _, s := range b.subs {
		if !s.cancelled.Load() {
			active++
		}
	}
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: active,
	}
}
