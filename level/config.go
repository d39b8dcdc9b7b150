package level

import (
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
)

const (
	// MaxLevel is the last numbered level
	MaxLevel = 10

	// RogueIndex starts the infinite rogue run
	RogueIndex = -1

	// TestIndex starts the looping test range
	TestIndex = -2
)

// Rates is a per-kind spawn interval table
type Rates [enemy.KindCount]time.Duration

// Counts is a per-kind integer table used for objectives, progress and spawn limits
type Counts [enemy.KindCount]int

// Config describes a single level, rogue layer or the test range
type Config struct {
	Number int
	Name   string

	Rogue bool
	Test  bool
	Theme int

	// Difficulty is the display scale, 1.0 for static levels
	Difficulty float64

	SpawnRates  Rates
	SpawnLimits Counts
	Objectives  Counts
}

// SpawnInterval implements enemy.Schedule
func (c *Config) SpawnInterval(k enemy.Kind) time.Duration {
	if k >= enemy.KindCount {
		return enemy.SpawnDisabled
	}
	return c.SpawnRates[k]
}

// SpawnLimit implements enemy.Schedule
func (c *Config) SpawnLimit(k enemy.Kind) int {
	if k >= enemy.KindCount {
		return 0
	}
	return c.SpawnLimits[k]
}

// rates builds a table with every kind disabled except the listed ones
func rates(set map[enemy.Kind]time.Duration) Rates {
	var r Rates
	for k := range r {
		r[k] = enemy.SpawnDisabled
	}
	for k, d := range set {
		r[k] = d
	}
	return r
}

func counts(set map[enemy.Kind]int) Counts {
	var c Counts
	for k, n := range set {
		c[k] = n
	}
	return c
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// levels is the static campaign table, indexed by level number - 1
var levels = [MaxLevel]Config{
	{
		Number: 1, Name: "Boot Sector",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1600)}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 12}),
	},
	{
		Number: 2, Name: "Packet Storm",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1400), enemy.ScanDrone: ms(6000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 15, enemy.ScanDrone: 3}),
	},
	{
		Number: 3, Name: "Worm Hole",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1300), enemy.ScanDrone: ms(5000), enemy.ChaosWorm: ms(7000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 15, enemy.ChaosWorm: 3}),
	},
	{
		Number: 4, Name: "Void Drift",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1200), enemy.ChaosWorm: ms(6000), enemy.VoidSphere: ms(8000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 20, enemy.VoidSphere: 3}),
	},
	{
		Number: 5, Name: "Crystal Cache",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1100), enemy.ScanDrone: ms(5000), enemy.CrystalShardSwarm: ms(4000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.CrystalShardSwarm: 8, enemy.ScanDrone: 4}),
	},
	{
		Number: 6, Name: "Kernel Panic",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1000), enemy.ChaosWorm: ms(5000), enemy.VoidSphere: ms(7000), enemy.CrystalShardSwarm: ms(5000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.ChaosWorm: 5, enemy.VoidSphere: 4, enemy.CrystalShardSwarm: 6}),
	},
	{
		Number: 7, Name: "Saucer Sweep",
		SpawnRates: rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1000), enemy.ScanDrone: ms(4000), enemy.UFO: ms(12000)}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 25, enemy.UFO: 2}),
	},
	{
		Number: 8, Name: "Deep Stack",
		SpawnRates: rates(map[enemy.Kind]time.Duration{
			enemy.DataMite: ms(900), enemy.ScanDrone: ms(4000), enemy.ChaosWorm: ms(4500),
			enemy.VoidSphere: ms(6000), enemy.CrystalShardSwarm: ms(4500),
		}),
		Objectives: counts(map[enemy.Kind]int{enemy.ScanDrone: 6, enemy.VoidSphere: 5, enemy.CrystalShardSwarm: 8}),
	},
	{
		Number: 9, Name: "Overflow",
		SpawnRates: rates(map[enemy.Kind]time.Duration{
			enemy.DataMite: ms(800), enemy.ScanDrone: ms(3500), enemy.ChaosWorm: ms(4000),
			enemy.VoidSphere: ms(5000), enemy.CrystalShardSwarm: ms(4000), enemy.UFO: ms(10000),
		}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 30, enemy.UFO: 3, enemy.VoidSphere: 6}),
	},
	{
		Number: 10, Name: "Root Access",
		SpawnRates: rates(map[enemy.Kind]time.Duration{
			enemy.DataMite: ms(1000), enemy.ScanDrone: ms(4000), enemy.VoidSphere: ms(6000),
			enemy.UFO: ms(12000), enemy.Boss: ms(5000),
		}),
		SpawnLimits: counts(map[enemy.Kind]int{enemy.Boss: 1}),
		Objectives:  counts(map[enemy.Kind]int{enemy.Boss: 1, enemy.DataMite: 20}),
	},
}

func init() {
	for i := range levels {
		levels[i].Difficulty = 1
	}
}

// GetLevelConfig returns a copy of the numbered level, clamped to [1, MaxLevel]
func GetLevelConfig(level int) Config {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levels[level-1]
}

// TestConfig returns the looping test range
func TestConfig() Config {
	return Config{
		Number:     0,
		Name:       "Test Range",
		Test:       true,
		Difficulty: 1,
		SpawnRates: rates(map[enemy.Kind]time.Duration{
			enemy.DataMite: ms(1000), enemy.ScanDrone: ms(4000), enemy.ChaosWorm: ms(4000),
			enemy.VoidSphere: ms(6000), enemy.CrystalShardSwarm: ms(5000), enemy.UFO: ms(15000),
		}),
		Objectives: counts(map[enemy.Kind]int{enemy.DataMite: 5, enemy.ScanDrone: 2, enemy.ChaosWorm: 2}),
	}
}
