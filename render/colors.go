package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/service"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // White
	RgbShot       = tcell.NewRGBColor(255, 255, 120) // Pale yellow
	RgbEnemyShot  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbPickupXP   = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbPickupHP   = tcell.NewRGBColor(80, 255, 80)   // Green
	RgbWormhole   = tcell.NewRGBColor(180, 100, 255) // Violet

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbBannerHigh = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBannerText = tcell.NewRGBColor(220, 220, 220)
	RgbOverlay    = tcell.NewRGBColor(255, 255, 0)
	RgbHealthLow  = tcell.NewRGBColor(255, 0, 0)
)

// enemyGlyphs and enemyColors are indexed by enemy.Kind
var enemyGlyphs = [enemy.KindCount]rune{
	enemy.DataMite:          'm',
	enemy.ScanDrone:         'd',
	enemy.ChaosWorm:         'w',
	enemy.VoidSphere:        'O',
	enemy.CrystalShardSwarm: '*',
	enemy.Fizzer:            '$',
	enemy.UFO:               'U',
	enemy.Boss:              'B',
}

var enemyColors = [enemy.KindCount]tcell.Color{
	enemy.DataMite:          tcell.NewRGBColor(0, 200, 0),
	enemy.ScanDrone:         tcell.NewRGBColor(100, 150, 255),
	enemy.ChaosWorm:         tcell.NewRGBColor(255, 120, 120),
	enemy.VoidSphere:        tcell.NewRGBColor(140, 60, 200),
	enemy.CrystalShardSwarm: tcell.NewRGBColor(140, 190, 255),
	enemy.Fizzer:            tcell.NewRGBColor(255, 215, 0),
	enemy.UFO:               tcell.NewRGBColor(200, 200, 200),
	enemy.Boss:              tcell.NewRGBColor(255, 40, 40),
}

// glyphFor returns the rune and foreground for a visual
func glyphFor(v service.Visual) (rune, tcell.Color) {
	switch v.Kind {
	case service.VisualPlayer:
		return '@', RgbPlayer
	case service.VisualEnemy:
		if v.Tag >= 0 && v.Tag < int(enemy.KindCount) {
			return enemyGlyphs[v.Tag], enemyColors[v.Tag]
		}
		return '?', RgbEnemyShot
	case service.VisualShot:
		return '\'', RgbShot
	case service.VisualEnemyShot:
		return 'o', RgbEnemyShot
	case service.VisualPickup:
		if v.Tag == 1 {
			return '+', RgbPickupHP
		}
		return '.', RgbPickupXP
	case service.VisualWormhole:
		return '#', RgbWormhole
	}
	return '?', RgbPlayer
}
