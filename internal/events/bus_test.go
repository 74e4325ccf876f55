package events

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestBusDeliversByTopic(t *testing.T) {
	b := NewBus()

	var keys, pointers []core.InputEvent
	b.Subscribe(TopicKey, func(ev Event) { keys = append(keys, ev.(Input).InputEvent) })
	b.Subscribe(TopicPointer, func(ev Event) { pointers = append(pointers, ev.(Input).InputEvent) })

	b.Publish(Input{core.KeyPress(core.KeyLeft)})
	b.Publish(Input{core.PointerMove(core.Vec{X: 1, Y: 2})})
	b.Publish(Input{core.KeyRelease(core.KeyLeft)})

	if len(keys) != 2 {
		t.Errorf("got %d key events, expected 2", len(keys))
	}
	if len(pointers) != 1 || pointers[0].Pos != (core.Vec{X: 1, Y: 2}) {
		t.Errorf("pointer events = %+v", pointers)
	}
}

func TestBusSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []int
	for i := range 5 {
		b.Subscribe(TopicSummary, func(Event) { order = append(order, i) })
	}

	b.Publish(Summary{Score: 1})

	for i, v := range order {
		if v != i {
			t.Fatalf("handlers ran out of order: %v", order)
		}
	}
}

func TestBusUnsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0
	unsub := b.Subscribe(TopicStarted, func(Event) { calls++ })

	if b.ListenerCount(TopicStarted) != 1 {
		t.Fatalf("ListenerCount = %d, expected 1", b.ListenerCount(TopicStarted))
	}

	unsub()
	unsub()
	b.Publish(Started{GameID: "snake"})

	if calls != 0 {
		t.Errorf("handler ran after unsubscribe")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after unsubscribe, expected 0", b.Len())
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	b := NewBus()
	var unsub func()
	calls := 0
	unsub = b.Subscribe(TopicStopped, func(Event) {
		calls++
		unsub()
	})

	b.Publish(Stopped{Reason: StopReasonClosed})
	b.Publish(Stopped{Reason: StopReasonClosed})

	if calls != 1 {
		t.Errorf("got %d calls, expected 1", calls)
	}
}

func TestBusSkipsHandlerRemovedMidPublish(t *testing.T) {
	b := NewBus()
	var unsubSecond func()
	firstCalls, secondCalls := 0, 0
	b.Subscribe(TopicStopped, func(Event) {
		firstCalls++
		unsubSecond()
	})
	unsubSecond = b.Subscribe(TopicStopped, func(Event) {
		secondCalls++
	})

	b.Publish(Stopped{Reason: StopReasonClosed})

	if firstCalls != 1 {
		t.Errorf("first handler ran %d times, expected 1", firstCalls)
	}
	if secondCalls != 0 {
		t.Errorf("removed handler ran %d times, expected 0", secondCalls)
	}
	if n := b.ListenerCount(TopicStopped); n != 1 {
		t.Errorf("ListenerCount = %d, expected 1", n)
	}
}

func TestBusHandlerAddedMidPublishWaits(t *testing.T) {
	b := NewBus()
	lateCalls := 0
	added := false
	b.Subscribe(TopicStopped, func(Event) {
		if !added {
			added = true
			b.Subscribe(TopicStopped, func(Event) { lateCalls++ })
		}
	})

	b.Publish(Stopped{Reason: StopReasonClosed})
	if lateCalls != 0 {
		t.Errorf("handler added during Publish ran %d times, expected 0", lateCalls)
	}
	b.Publish(Stopped{Reason: StopReasonClosed})
	if lateCalls != 1 {
		t.Errorf("handler ran %d times after the next Publish, expected 1", lateCalls)
	}
}
