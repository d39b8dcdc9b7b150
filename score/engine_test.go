package score

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/event"
)

type mockSpawner struct {
	calls  int
	resets int
	grant  bool
}

func (m *mockSpawner) SpawnFizzer() bool {
	m.calls++
	return m.grant
}

func (m *mockSpawner) ResetFizzerStreak() { m.resets++ }

func newTestEngine() (*Engine, *mockSpawner, *event.Queue) {
	sp := &mockSpawner{grant: true}
	q := event.NewQueue()
	return NewEngine(DefaultConfig(), sp, q, nil), sp, q
}

func countEvents(evs []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// TestStreakRequestsFizzers verifies an 11-kill streak requests bonus spawns at 5, 8 and 11
func TestStreakRequestsFizzers(t *testing.T) {
	e, sp, _ := newTestEngine()
	now := time.Duration(0)
	for i := 0; i < 11; i++ {
		now += time.Second
		e.OnKill(enemy.DataMite, now)
	}

	if e.Multiplier() != 11 {
		t.Errorf("Expected multiplier 11, got %d", e.Multiplier())
	}
	if sp.calls != 3 {
		t.Errorf("Expected 3 Fizzer requests, got %d", sp.calls)
	}
}

// TestPointsUseMultiplier verifies awards scale with the multiplier at kill time
func TestPointsUseMultiplier(t *testing.T) {
	e, _, _ := newTestEngine()
	base := int64(enemy.ProfileOf(enemy.DataMite).Score)

	if got := e.OnKill(enemy.DataMite, time.Second); got != base {
		t.Errorf("Expected first kill %d, got %d", base, got)
	}
	if got := e.OnKill(enemy.DataMite, 2*time.Second); got != 2*base {
		t.Errorf("Expected second kill %d, got %d", 2*base, got)
	}
	// Outside the chain window: no increment, but not yet decayed
	if got := e.OnKill(enemy.DataMite, 3600*time.Millisecond); got != 2*base {
		t.Errorf("Expected third kill at x2, got %d", got)
	}
	if e.Points() != 5*base {
		t.Errorf("Expected total %d, got %d", 5*base, e.Points())
	}
}

// TestMultiplierCap verifies the multiplier stops at 15
func TestMultiplierCap(t *testing.T) {
	e, _, _ := newTestEngine()
	for i := 0; i < 40; i++ {
		e.OnKill(enemy.DataMite, time.Duration(i)*100*time.Millisecond)
	}
	if e.Multiplier() != 15 {
		t.Errorf("Expected cap 15, got %d", e.Multiplier())
	}
}

// TestMultiplierDecay verifies inactivity resets with a lost notice only from x3
func TestMultiplierDecay(t *testing.T) {
	tests := []struct {
		name  string
		kills int
		lost  int
	}{
		{"x2 silent", 2, 0},
		{"x3 announced", 3, 1},
		{"x6 announced", 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, q := newTestEngine()
			now := time.Duration(0)
			for i := 0; i < tt.kills; i++ {
				now += 500 * time.Millisecond
				e.OnKill(enemy.DataMite, now)
			}
			q.Consume()

			e.Update(now + 2*time.Second)
			if e.Multiplier() != tt.kills {
				t.Fatalf("Expected no decay at exactly the window, got %d", e.Multiplier())
			}
			e.Update(now + 2*time.Second + time.Millisecond)
			if e.Multiplier() != 1 {
				t.Errorf("Expected reset to 1, got %d", e.Multiplier())
			}
			if got := countEvents(q.Consume(), event.EventMultiplierLost); got != tt.lost {
				t.Errorf("Expected %d lost events, got %d", tt.lost, got)
			}
		})
	}
}

// TestDamageResetsStreak verifies damage clears multiplier and combo and re-arms Fizzers
func TestDamageResetsStreak(t *testing.T) {
	e, sp, _ := newTestEngine()
	for i := 1; i <= 4; i++ {
		e.OnKill(enemy.DataMite, time.Duration(i)*time.Second)
	}

	e.OnPlayerDamaged()
	if e.Multiplier() != 1 || e.Combo() != 0 {
		t.Errorf("Expected reset, got x%d combo %d", e.Multiplier(), e.Combo())
	}
	if sp.resets != 1 {
		t.Errorf("Expected Fizzer streak reset, got %d", sp.resets)
	}

	// The next kill starts a fresh chain even inside the window
	e.OnKill(enemy.DataMite, 4500*time.Millisecond)
	if e.Multiplier() != 1 {
		t.Errorf("Expected fresh chain at x1, got %d", e.Multiplier())
	}
}

// TestComboWindow verifies combo decay and the adjustable window
func TestComboWindow(t *testing.T) {
	e, _, q := newTestEngine()
	for i := 1; i <= 5; i++ {
		e.OnKill(enemy.DataMite, time.Duration(i)*2500*time.Millisecond)
	}
	if e.Combo() != 5 {
		t.Fatalf("Expected combo 5, got %d", e.Combo())
	}
	if countEvents(q.Consume(), event.EventComboTier) != 1 {
		t.Error("Expected one combo tier event")
	}

	e.Update(12500*time.Millisecond + 3001*time.Millisecond)
	if e.Combo() != 0 {
		t.Errorf("Expected combo decayed, got %d", e.Combo())
	}

	e.SetComboWindow(4500 * time.Millisecond)
	e.OnKill(enemy.DataMite, 20*time.Second)
	e.Update(24 * time.Second)
	if e.Combo() != 1 {
		t.Errorf("Expected extended window to hold combo, got %d", e.Combo())
	}
	e.SetComboWindow(0)
	if e.ComboWindow() != 4500*time.Millisecond {
		t.Error("Expected non-positive window ignored")
	}
}

// TestKillCluster verifies cluster events need two kills inside 0.8s
func TestKillCluster(t *testing.T) {
	e, _, q := newTestEngine()
	e.OnKill(enemy.DataMite, 1*time.Second)
	e.OnKill(enemy.DataMite, 2*time.Second)
	if countEvents(q.Consume(), event.EventKillCluster) != 0 {
		t.Error("Expected no cluster for kills 1s apart")
	}

	e.OnKill(enemy.DataMite, 2500*time.Millisecond)
	e.OnKill(enemy.DataMite, 2700*time.Millisecond)
	evs := q.Consume()
	if countEvents(evs, event.EventKillCluster) != 2 {
		t.Errorf("Expected 2 cluster events, got %d", countEvents(evs, event.EventKillCluster))
	}
}

// TestBonusWithoutGrant verifies requests are counted even when the spawner refuses
func TestBonusWithoutGrant(t *testing.T) {
	sp := &mockSpawner{grant: false}
	e := NewEngine(DefaultConfig(), sp, nil, nil)
	for i := 0; i < 8; i++ {
		e.OnKill(enemy.DataMite, time.Duration(i)*time.Second)
	}
	if e.BonusRequests() != 2 || sp.calls != 2 {
		t.Errorf("Expected 2 requests, got %d/%d", e.BonusRequests(), sp.calls)
	}
}
