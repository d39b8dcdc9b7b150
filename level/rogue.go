package level

import (
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
)

// RogueThemeCount is the length of the rogue theme cycle
const RogueThemeCount = 6

// bossTheme is the theme that always fields exactly one boss
const bossTheme = 6

// bossDelay is the fixed boss spawn delay on boss layers, unaffected by scaling
const bossDelay = 4 * time.Second

type rogueTheme struct {
	name       string
	rates      Rates
	objectives Counts
}

var rogueThemes = [RogueThemeCount]rogueTheme{
	{
		name:       "Static Field",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1500), enemy.ScanDrone: ms(6000)}),
		objectives: counts(map[enemy.Kind]int{enemy.DataMite: 10, enemy.ScanDrone: 2}),
	},
	{
		name:       "Worm Nest",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1800), enemy.ChaosWorm: ms(4000)}),
		objectives: counts(map[enemy.Kind]int{enemy.ChaosWorm: 5}),
	},
	{
		name:       "Void Reach",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1500), enemy.VoidSphere: ms(5000)}),
		objectives: counts(map[enemy.Kind]int{enemy.DataMite: 8, enemy.VoidSphere: 3}),
	},
	{
		name:       "Shard Garden",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.CrystalShardSwarm: ms(3000), enemy.ScanDrone: ms(5000)}),
		objectives: counts(map[enemy.Kind]int{enemy.CrystalShardSwarm: 6, enemy.ScanDrone: 2}),
	},
	{
		name:       "Saucer Lane",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(1200), enemy.UFO: ms(9000)}),
		objectives: counts(map[enemy.Kind]int{enemy.DataMite: 12, enemy.UFO: 2}),
	},
	{
		name:       "Core Guardian",
		rates:      rates(map[enemy.Kind]time.Duration{enemy.DataMite: ms(2000), enemy.ScanDrone: ms(6000)}),
		objectives: counts(map[enemy.Kind]int{enemy.DataMite: 6}),
	},
}

// RogueTheme returns the 1-based theme of a layer
func RogueTheme(layer int) int {
	if layer < 1 {
		layer = 1
	}
	return (layer-1)%RogueThemeCount + 1
}

// GetRogueLevelConfig synthesises a rogue layer
// Scale is 1 + 0.15 per layer past the first, kept in integer percent so objective
// floors are exact: objectives floor(base*scale), intervals base/scale
func GetRogueLevelConfig(layer int) Config {
	if layer < 1 {
		layer = 1
	}
	theme := RogueTheme(layer)
	src := rogueThemes[theme-1]
	pct := int64(100 + (layer-1)*15)

	cfg := Config{
		Number:     layer,
		Name:       src.name,
		Rogue:      true,
		Theme:      theme,
		Difficulty: float64(pct) / 100,
	}
	for k := range cfg.SpawnRates {
		base := src.rates[k]
		if base == enemy.SpawnDisabled || base <= 0 {
			cfg.SpawnRates[k] = enemy.SpawnDisabled
			continue
		}
		cfg.SpawnRates[k] = time.Duration(int64(base) * 100 / pct)
	}
	for k, base := range src.objectives {
		cfg.Objectives[k] = int(int64(base) * pct / 100)
	}

	if theme == bossTheme {
		cfg.SpawnRates[enemy.Boss] = bossDelay
		cfg.SpawnLimits[enemy.Boss] = 1
		cfg.Objectives[enemy.Boss] = 1
	}
	return cfg
}
