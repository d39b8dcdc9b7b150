package session

import (
	"testing"
	"time"
)

// TestDelayQueueOrder verifies due callbacks run in schedule order
func TestDelayQueueOrder(t *testing.T) {
	var q DelayQueue
	var got []int
	q.Schedule(300*time.Millisecond, func() { got = append(got, 3) })
	q.Schedule(100*time.Millisecond, func() { got = append(got, 1) })
	q.Schedule(100*time.Millisecond, func() { got = append(got, 2) })

	if n := q.Advance(100 * time.Millisecond); n != 2 {
		t.Errorf("Expected 2 due, got %d", n)
	}
	q.Advance(200 * time.Millisecond)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Expected [1 2 3], got %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

// TestDelayQueueCancel verifies cancelled callbacks never run
func TestDelayQueueCancel(t *testing.T) {
	var q DelayQueue
	ran := 0
	id := q.Schedule(50*time.Millisecond, func() { ran++ })
	q.Schedule(50*time.Millisecond, func() { ran++ })
	q.Cancel(id)
	q.Cancel(12345)
	q.Advance(time.Second)
	if ran != 1 {
		t.Errorf("Expected 1 run, got %d", ran)
	}

	q.Schedule(0, func() { ran++ })
	q.CancelAll()
	q.Advance(time.Second)
	if ran != 1 {
		t.Errorf("Expected CancelAll to drop pending, got %d", ran)
	}
}

// TestDelayQueueNestedSchedule verifies callbacks scheduled during Advance wait a tick
func TestDelayQueueNestedSchedule(t *testing.T) {
	var q DelayQueue
	inner := false
	q.Schedule(0, func() {
		q.Schedule(0, func() { inner = true })
	})
	q.Advance(10 * time.Millisecond)
	if inner {
		t.Fatal("Expected nested callback deferred")
	}
	q.Advance(10 * time.Millisecond)
	if !inner {
		t.Error("Expected nested callback on next advance")
	}
}
