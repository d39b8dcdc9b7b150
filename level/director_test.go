package level

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
)

// TestGetLevelConfigClamps verifies out-of-range indices clamp to the table
func TestGetLevelConfigClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1}, {0, 1}, {1, 1}, {5, 5}, {10, 10}, {11, 10}, {99, 10},
	}
	for _, tt := range tests {
		if got := GetLevelConfig(tt.in).Number; got != tt.want {
			t.Errorf("GetLevelConfig(%d): expected level %d, got %d", tt.in, tt.want, got)
		}
	}
}

// TestLevelTableSane verifies every level has objectives and never schedules Fizzers
func TestLevelTableSane(t *testing.T) {
	for i := 1; i <= MaxLevel; i++ {
		cfg := GetLevelConfig(i)
		total := 0
		for k, n := range cfg.Objectives {
			total += n
			if n > 0 && cfg.SpawnRates[k] == enemy.SpawnDisabled {
				t.Errorf("Level %d: objective %s has no spawner", i, enemy.Kind(k))
			}
		}
		if total == 0 {
			t.Errorf("Level %d: expected objectives", i)
		}
		if cfg.SpawnRates[enemy.Fizzer] != enemy.SpawnDisabled {
			t.Errorf("Level %d: Fizzer must not be timer-spawned", i)
		}
	}
}

// TestGetLevelConfigIsCopy verifies callers cannot mutate the table
func TestGetLevelConfigIsCopy(t *testing.T) {
	cfg := GetLevelConfig(1)
	cfg.Objectives[enemy.DataMite] = 999
	if GetLevelConfig(1).Objectives[enemy.DataMite] == 999 {
		t.Error("Expected table unaffected by caller mutation")
	}
}

// TestRogueConfigDeterministic verifies layers are pure functions of their number
func TestRogueConfigDeterministic(t *testing.T) {
	for layer := 1; layer <= 20; layer++ {
		a, b := GetRogueLevelConfig(layer), GetRogueLevelConfig(layer)
		if a != b {
			t.Errorf("Layer %d: expected identical configs", layer)
		}
	}
}

// TestRogueScaling verifies theme cycling and objective/interval scaling
func TestRogueScaling(t *testing.T) {
	l1 := GetRogueLevelConfig(1)
	l7 := GetRogueLevelConfig(7)

	if l1.Theme != 1 || l7.Theme != 1 {
		t.Fatalf("Expected theme 1 for layers 1 and 7, got %d %d", l1.Theme, l7.Theme)
	}
	// Layer 7 scale is 1.9: floor(10*1.9) = 19
	if got := l7.Objectives[enemy.DataMite]; got != 19 {
		t.Errorf("Expected 19 mites on layer 7, got %d", got)
	}
	// 1500ms / 1.9
	want := time.Duration(int64(1500*time.Millisecond) * 100 / 190)
	if got := l7.SpawnRates[enemy.DataMite]; got != want {
		t.Errorf("Expected interval %v, got %v", want, got)
	}
	if l7.SpawnRates[enemy.ChaosWorm] != enemy.SpawnDisabled {
		t.Error("Expected disabled kinds to stay disabled")
	}
	if GetRogueLevelConfig(0) != l1 {
		t.Error("Expected layer 0 clamped to 1")
	}
}

// TestRogueBossTheme verifies boss layers field exactly one boss on a fixed delay
func TestRogueBossTheme(t *testing.T) {
	for _, layer := range []int{6, 12, 18} {
		cfg := GetRogueLevelConfig(layer)
		if cfg.Theme != 6 {
			t.Fatalf("Layer %d: expected theme 6, got %d", layer, cfg.Theme)
		}
		if cfg.Objectives[enemy.Boss] != 1 || cfg.SpawnLimits[enemy.Boss] != 1 {
			t.Errorf("Layer %d: expected exactly one boss", layer)
		}
		if cfg.SpawnRates[enemy.Boss] != bossDelay {
			t.Errorf("Layer %d: expected fixed boss delay, got %v", layer, cfg.SpawnRates[enemy.Boss])
		}
	}
	if GetRogueLevelConfig(5).Objectives[enemy.Boss] != 0 {
		t.Error("Expected no boss on non-boss theme")
	}
}

// TestDirectorSpecialIndices verifies rogue and test indices resolve before clamping
func TestDirectorSpecialIndices(t *testing.T) {
	d := NewDirector(nil)
	if d.Config() != nil {
		t.Fatal("Expected nil config before start")
	}

	d.Start(RogueIndex)
	if !d.Config().Rogue || d.Layer() != 1 {
		t.Errorf("Expected rogue layer 1, got rogue=%v layer=%d", d.Config().Rogue, d.Layer())
	}

	d.Start(TestIndex)
	if !d.Config().Test {
		t.Error("Expected test config")
	}

	d.Start(-7)
	if d.Config().Number != 1 {
		t.Errorf("Expected other negatives clamped to 1, got %d", d.Config().Number)
	}
}

// TestObjectivesLatch verifies completion stays true once met
func TestObjectivesLatch(t *testing.T) {
	d := NewDirector(nil)
	d.Start(1)
	for i := 0; i < 11; i++ {
		d.RegisterKill(enemy.DataMite)
	}
	if d.CheckObjectivesComplete() {
		t.Fatal("Expected incomplete at 11/12")
	}
	d.RegisterKill(enemy.ScanDrone)
	if d.CheckObjectivesComplete() {
		t.Fatal("Expected unrelated kills not to count")
	}
	d.RegisterKill(enemy.DataMite)
	if !d.CheckObjectivesComplete() {
		t.Fatal("Expected complete at 12/12")
	}

	d.RegisterKill(enemy.DataMite)
	if !d.CheckObjectivesComplete() {
		t.Error("Expected completion to latch")
	}
	if d.Remaining(enemy.DataMite) != 0 {
		t.Errorf("Expected no remaining, got %d", d.Remaining(enemy.DataMite))
	}
}

// TestAdvanceResetsProgress verifies advancing clears progress, latch and clock
func TestAdvanceResetsProgress(t *testing.T) {
	d := NewDirector(nil)
	d.Start(9)
	d.Update(5 * time.Second)
	d.RegisterKill(enemy.DataMite)

	d.AdvanceLevel()
	if d.Level() != 10 || d.Elapsed() != 0 || d.Progress()[enemy.DataMite] != 0 {
		t.Errorf("Expected clean level 10, got level=%d elapsed=%v", d.Level(), d.Elapsed())
	}
	if !d.Final() {
		t.Error("Expected level 10 to be final")
	}
	d.AdvanceLevel()
	if d.Level() != 10 {
		t.Errorf("Expected advance capped at 10, got %d", d.Level())
	}
}

// TestScrollOffset verifies the scroll floor is linear in level time for rogue only
func TestScrollOffset(t *testing.T) {
	d := NewDirector(nil)
	d.Start(RogueIndex)
	d.Update(4 * time.Second)
	if got := d.ScrollOffset(); got != 6 {
		t.Errorf("Expected offset 6, got %f", got)
	}

	d.AdvanceRogueLayer()
	if d.Layer() != 2 || d.ScrollOffset() != 0 {
		t.Errorf("Expected layer 2 with reset clock, got %d %f", d.Layer(), d.ScrollOffset())
	}

	d.Start(3)
	d.Update(4 * time.Second)
	if d.ScrollOffset() != 0 {
		t.Error("Expected no scroll outside rogue")
	}
}
