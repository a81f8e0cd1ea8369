package watch

import (
	"testing"
	"time"
)

func TestHub_PublishReachesTopicSubscribersOnly(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	first, cancelFirst := hub.Subscribe("matches:1ra", 4)
	defer cancelFirst()
	other, cancelOther := hub.Subscribe("matches:2da", 4)
	defer cancelOther()

	hub.Publish(Event{Topic: "matches:1ra", Action: ActionFinalized, EntityID: "m1"})

	select {
	case ev := <-first:
		if ev.EntityID != "m1" || ev.Action != ActionFinalized {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.At.IsZero() {
			t.Fatal("publish must stamp the event time")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	select {
	case ev := <-other:
		t.Fatalf("other division received %+v", ev)
	default:
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe("avisos", 1)
	defer cancel()

	hub.Publish(Event{Topic: "avisos", Action: ActionCreated, EntityID: "a1"})
	hub.Publish(Event{Topic: "avisos", Action: ActionCreated, EntityID: "a2"})

	if got := len(ch); got != 1 {
		t.Fatalf("expected exactly one buffered event, got %d", got)
	}
}

func TestHub_CancelIsIdempotentAndClosesChannel(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe("albums", 1)

	cancel()
	cancel()

	if _, open := <-ch; open {
		t.Fatal("channel should be closed after cancel")
	}
	if hub.SubscriberCount("albums") != 0 {
		t.Fatal("subscription should be removed")
	}
}

func TestTopic(t *testing.T) {
	t.Parallel()

	if got := Topic("matches", "1ra"); got != "matches:1ra" {
		t.Fatalf("Topic = %q", got)
	}
	if got := Topic("avisos", ""); got != "avisos" {
		t.Fatalf("Topic = %q", got)
	}
}
