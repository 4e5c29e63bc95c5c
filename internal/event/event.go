// Package event provides a small topic-based notification bus.
//
// The scroll scheduler publishes lifecycle events (run started, step
// performed, run finished, run interrupted) so that renderers and other
// host components can refresh highlights without a direct dependency on
// the scheduler. Delivery is synchronous and best-effort: a handler error
// or panic is counted but never propagates to the publisher.
package event

import (
	"strings"
	"time"
)

// Topics published by the scroll scheduler.
const (
	// TopicScrollStart is published when a run begins, before the first step.
	TopicScrollStart = "scroll.start"

	// TopicScrollStep is published after each unit scroll step.
	TopicScrollStep = "scroll.step"

	// TopicScrollFinish is published when a run completes normally.
	TopicScrollFinish = "scroll.finish"

	// TopicScrollInterrupt is published when a run is cancelled.
	TopicScrollInterrupt = "scroll.interrupt"
)

// Envelope wraps a published payload with delivery metadata.
type Envelope struct {
	// ID uniquely identifies this event.
	ID string

	// Topic is the dot-separated topic the event was published on.
	Topic string

	// Time is when the event was published.
	Time time.Time

	// Payload is the event data. Handlers type-assert as needed.
	Payload any
}

// Handler processes a delivered event.
type Handler interface {
	Handle(ev Envelope)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ev Envelope)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ev Envelope) {
	f(ev)
}

// topicMatches reports whether a subscription pattern matches a topic.
// Patterns are either exact ("scroll.step") or a prefix wildcard
// ("scroll.*", "*").
func topicMatches(pattern, topic string) bool {
	if pattern == topic || pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(topic, prefix+".")
	}
	return false
}
