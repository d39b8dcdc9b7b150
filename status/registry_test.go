package status

import "testing"

// TestGetReturnsCachedPointer verifies repeated Get calls share one metric
func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("enemy.alive")
	b := r.Ints.Get("enemy.alive")
	if a != b {
		t.Fatal("Expected identical pointers for the same key")
	}
	a.Store(5)
	if b.Load() != 5 {
		t.Errorf("Expected 5, got %d", b.Load())
	}
}

// TestSnapshotFormatsAllTypes verifies the overlay snapshot covers every map
func TestSnapshotFormatsAllTypes(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("session.paused").Store(true)
	r.Ints.Get("score.points").Store(120)
	r.Floats.Get("engine.dt").Set(0.016)
	r.Strings.Get("session.state").Store("Playing")

	snap := r.Snapshot()
	want := map[string]string{
		"session.paused": "true",
		"score.points":   "120",
		"engine.dt":      "0.02",
		"session.state":  "Playing",
	}
	for k, v := range want {
		if snap[k] != v {
			t.Errorf("Expected %s=%q, got %q", k, v, snap[k])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}

// TestAtomicStringTruncates verifies long labels are capped
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("this label is far longer than the limit allows")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}
