package event

import (
	"sync"
	"testing"
)

// TestQueueFIFO verifies events come out in push order
func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Emit(EventNotify, &CountPayload{Value: i}, int64(i))
	}
	evs := q.Consume()
	if len(evs) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(evs))
	}
	for i, ev := range evs {
		if ev.Payload.(*CountPayload).Value != i {
			t.Errorf("Expected value %d at %d, got %d", i, i, ev.Payload.(*CountPayload).Value)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

// TestQueueOverflowKeepsNewest verifies oldest events are dropped when full
func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Emit(EventNotify, &CountPayload{Value: i}, 0)
	}
	evs := q.Consume()
	if len(evs) != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, len(evs))
	}
	if first := evs[0].Payload.(*CountPayload).Value; first != 10 {
		t.Errorf("Expected oldest surviving value 10, got %d", first)
	}
}

// TestQueueConcurrentPush verifies concurrent producers lose nothing below capacity
func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Emit(EventPlayerFired, nil, 0)
			}
		}()
	}
	wg.Wait()
	if n := len(q.Consume()); n != 200 {
		t.Errorf("Expected 200 events, got %d", n)
	}
}

type panicHandler struct{}

func (panicHandler) HandleEvent(GameEvent)   { panic("boom") }
func (panicHandler) EventTypes() []EventType { return []EventType{EventPlayerHit} }

// TestRouterSurvivesPanickingHandler verifies dispatch is best-effort
func TestRouterSurvivesPanickingHandler(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)
	r.Register(panicHandler{})

	got := 0
	r.Register(HandlerFunc{
		Types: []EventType{EventPlayerHit},
		Fn:    func(GameEvent) { got++ },
	})

	q.Emit(EventPlayerHit, &PlayerHitPayload{Damage: 1}, 0)
	q.Emit(EventPlayerHit, &PlayerHitPayload{Damage: 1}, 0)

	if n := r.DispatchAll(); n != 2 {
		t.Errorf("Expected 2 dispatched, got %d", n)
	}
	if got != 2 {
		t.Errorf("Expected second handler to run twice, got %d", got)
	}
	if r.HandlerCount(EventPlayerHit) != 2 {
		t.Errorf("Expected 2 handlers, got %d", r.HandlerCount(EventPlayerHit))
	}
}

// TestEventTypeString verifies names for known and unknown types
func TestEventTypeString(t *testing.T) {
	if EventEnemyKilled.String() != "EnemyKilled" {
		t.Errorf("Expected EnemyKilled, got %s", EventEnemyKilled.String())
	}
	if EventTypeCount.String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventTypeCount.String())
	}
}
