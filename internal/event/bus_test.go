package event

import (
	"errors"
	"testing"
)

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()

	if _, err := b.Subscribe("scroll.step", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
	if _, err := b.SubscribeFunc("", func(Envelope) {}); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}
}

func TestPublishExactTopic(t *testing.T) {
	b := NewBus()
	var got []Envelope

	_, err := b.SubscribeFunc(TopicScrollStep, func(ev Envelope) {
		got = append(got, ev)
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStep, 3)
	b.Publish(TopicScrollFinish, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}
	if got[0].Topic != TopicScrollStep {
		t.Errorf("expected topic %q, got %q", TopicScrollStep, got[0].Topic)
	}
	if got[0].Payload != 3 {
		t.Errorf("expected payload 3, got %v", got[0].Payload)
	}
	if got[0].ID == "" {
		t.Error("expected non-empty event ID")
	}
}

func TestPublishWildcard(t *testing.T) {
	b := NewBus()
	count := 0

	if _, err := b.SubscribeFunc("scroll.*", func(Envelope) { count++ }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStart, nil)
	b.Publish(TopicScrollStep, nil)
	b.Publish(TopicScrollInterrupt, nil)
	b.Publish("config.changed", nil)

	if count != 3 {
		t.Errorf("expected 3 deliveries via wildcard, got %d", count)
	}
}

func TestPublishGlobalWildcard(t *testing.T) {
	b := NewBus()
	count := 0

	if _, err := b.SubscribeFunc("*", func(Envelope) { count++ }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStart, nil)
	b.Publish("config.changed", nil)

	if count != 2 {
		t.Errorf("expected 2 deliveries via global wildcard, got %d", count)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus()
	count := 0

	sub, err := b.SubscribeFunc(TopicScrollStep, func(Envelope) { count++ })
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStep, nil)
	b.Unsubscribe(sub)
	b.Publish(TopicScrollStep, nil)

	if count != 1 {
		t.Errorf("expected 1 delivery after unsubscribe, got %d", count)
	}

	if got := b.Stats().ActiveSubscribers; got != 0 {
		t.Errorf("expected 0 active subscribers, got %d", got)
	}
}

func TestHandlerPanicIsolated(t *testing.T) {
	b := NewBus()
	secondRan := false

	if _, err := b.SubscribeFunc(TopicScrollStep, func(Envelope) { panic("boom") }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if _, err := b.SubscribeFunc(TopicScrollStep, func(Envelope) { secondRan = true }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStep, nil)

	if !secondRan {
		t.Error("panic in one handler prevented later delivery")
	}
	if got := b.Stats().HandlerPanics; got != 1 {
		t.Errorf("expected 1 recorded panic, got %d", got)
	}
}

func TestStatsCounters(t *testing.T) {
	b := NewBus()

	if _, err := b.SubscribeFunc("scroll.*", func(Envelope) {}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	b.Publish(TopicScrollStart, nil)
	b.Publish(TopicScrollStep, nil)

	stats := b.Stats()
	if stats.EventsPublished != 2 {
		t.Errorf("EventsPublished = %d, want 2", stats.EventsPublished)
	}
	if stats.EventsDelivered != 2 {
		t.Errorf("EventsDelivered = %d, want 2", stats.EventsDelivered)
	}
	if stats.ActiveSubscribers != 1 {
		t.Errorf("ActiveSubscribers = %d, want 1", stats.ActiveSubscribers)
	}
}

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"scroll.step", "scroll.step", true},
		{"scroll.step", "scroll.start", false},
		{"scroll.*", "scroll.step", true},
		{"scroll.*", "scroll", false},
		{"scroll.*", "config.changed", false},
		{"*", "anything.at.all", true},
	}

	for _, tt := range tests {
		if got := topicMatches(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatches(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}
