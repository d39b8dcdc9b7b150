package session

import "time"

type delayEntry struct {
	id   uint64
	left time.Duration
	fn   func()
}

// DelayQueue runs callbacks after game-time delays
// It only advances when the session feeds it, so pauses hold every pending callback
type DelayQueue struct {
	entries []*delayEntry
	nextID  uint64
}

// Schedule queues fn to run once d of game time has passed; returns a cancel id
func (q *DelayQueue) Schedule(d time.Duration, fn func()) uint64 {
	q.nextID++
	q.entries = append(q.entries, &delayEntry{id: q.nextID, left: d, fn: fn})
	return q.nextID
}

// Cancel drops a pending callback; unknown ids are ignored
func (q *DelayQueue) Cancel(id uint64) {
	for i, e := range q.entries {
		if e.id == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// CancelAll drops every pending callback
func (q *DelayQueue) CancelAll() {
	clear(q.entries)
	q.entries = q.entries[:0]
}

// Advance moves time forward and runs due callbacks in schedule order
// Callbacks scheduled from inside a callback wait for the next Advance
func (q *DelayQueue) Advance(dt time.Duration) int {
	if len(q.entries) == 0 {
		return 0
	}
	due := make([]func(), 0, len(q.entries))
	kept := q.entries[:0]
	for _, e := range q.entries {
		e.left -= dt
		if e.left <= 0 {
			due = append(due, e.fn)
			continue
		}
		kept = append(kept, e)
	}
	clear(q.entries[len(kept):])
	q.entries = kept

	for _, fn := range due {
		fn()
	}
	return len(due)
}

func (q *DelayQueue) Len() int {
	return len(q.entries)
}
