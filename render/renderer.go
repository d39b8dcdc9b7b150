package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// Overlay selects the centred panel drawn over the playfield
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStart
	OverlayPaused
	OverlayDeath
	OverlayTransition
	OverlayChoice
	OverlayGameOver
)

// Objective is one HUD progress entry
type Objective struct {
	Name string
	Done int
	Need int
}

// Frame is the per-frame HUD snapshot; world entities come from the Scene
type Frame struct {
	Overlay     Overlay
	Mode        string
	Level       int
	LevelName   string
	Score       int64
	Multiplier  int
	Combo       int
	Health      int
	MaxHealth   int
	Shield      int
	XP          int
	XPNext      int
	PlayerLevel int
	Objectives  []Objective
	Choices     []string
	Progress    float64 // Death animation or transition progress in [0,1]
	Muted       bool
}

// Renderer draws the scene and HUD onto a tcell screen
// World units map to two columns and one row, y up
type Renderer struct {
	screen tcell.Screen
	scene  *Scene
	hud    *HUD
	buf    []service.Visual
}

// NewRenderer creates a renderer; hud may be nil
func NewRenderer(screen tcell.Screen, scene *Scene, hud *HUD) *Renderer {
	return &Renderer{screen: screen, scene: scene, hud: hud}
}

// Draw renders one frame; the caller calls Show
func (r *Renderer) Draw(f Frame) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	w, h := r.screen.Size()
	if w <= 0 || h < 3 {
		return
	}

	if f.Overlay != OverlayStart {
		r.drawWorld(w, h, bg)
	}
	r.drawStatus(f, w)
	r.drawObjectives(f, w, bg)
	r.drawBanner(w, h, bg)
	r.drawOverlay(f, w, h, bg)
}

// ToCell maps a world position to a screen cell for the given focus and screen size
func ToCell(p, focus vmath.Vec2, w, h int) (int, int) {
	x := w/2 + int(math.Round((p.X-focus.X)*2))
	y := h/2 - int(math.Round(p.Y-focus.Y))
	return x, y
}

func (r *Renderer) drawWorld(w, h int, bg tcell.Style) {
	focus := r.scene.CameraFocus()
	r.buf = r.scene.Snapshot(r.buf[:0])

	for _, v := range r.buf {
		ch, fg := glyphFor(v)
		style := bg.Foreground(fg)
		cx, cy := ToCell(v.Pos, focus, w, h)

		if v.Radius < 1 || v.Kind == service.VisualPlayer {
			r.plot(cx, cy, w, h, ch, style)
			continue
		}

		// Large bodies fill their footprint
		span := int(math.Ceil(v.Radius))
		rsq := v.Radius * v.Radius
		for dy := -span; dy <= span; dy++ {
			for dx := -2 * span; dx <= 2*span; dx++ {
				ox, oy := float64(dx)/2, float64(dy)
				if ox*ox+oy*oy <= rsq {
					r.plot(cx+dx, cy+dy, w, h, ch, style)
				}
			}
		}
	}
}

// plot writes inside the playfield rows only
func (r *Renderer) plot(x, y, w, h int, ch rune, style tcell.Style) {
	if x < 0 || x >= w || y < 2 || y >= h-1 {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(y, w int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, s, style)
}

func (r *Renderer) drawStatus(f Frame, w int) {
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	var b strings.Builder
	fmt.Fprintf(&b, " %s L%d %s | SCORE %d x%d | COMBO %d | HP %d/%d", f.Mode, f.Level, f.LevelName, f.Score, f.Multiplier, f.Combo, f.Health, f.MaxHealth)
	if f.Shield > 0 {
		fmt.Fprintf(&b, " [S%d]", f.Shield)
	}
	fmt.Fprintf(&b, " | LV%d %d/%d", f.PlayerLevel, f.XP, f.XPNext)
	if f.Muted {
		b.WriteString(" | MUTE")
	}
	r.drawText(0, 0, b.String(), style)

	if f.MaxHealth > 0 && f.Health*4 <= f.MaxHealth {
		r.drawText(w-5, 0, " LOW ", style.Background(RgbHealthLow))
	}
}

func (r *Renderer) drawObjectives(f Frame, w int, bg tcell.Style) {
	if len(f.Objectives) == 0 {
		return
	}
	parts := make([]string, 0, len(f.Objectives))
	for _, o := range f.Objectives {
		parts = append(parts, fmt.Sprintf("%s %d/%d", o.Name, min(o.Done, o.Need), o.Need))
	}
	r.drawText(1, 1, strings.Join(parts, "  "), bg.Foreground(RgbBannerText))
}

func (r *Renderer) drawBanner(w, h int, bg tcell.Style) {
	if r.hud == nil {
		return
	}
	text, prio := r.hud.Banner()
	if text == "" {
		return
	}
	fg := RgbBannerText
	if prio >= event.PriorityHigh {
		fg = RgbBannerHigh
	}
	r.drawCentered(h-1, w, text, bg.Foreground(fg).Bold(prio >= event.PriorityHigh))
}

func (r *Renderer) drawOverlay(f Frame, w, h int, bg tcell.Style) {
	style := bg.Foreground(RgbOverlay).Bold(true)
	mid := h / 2
	switch f.Overlay {
	case OverlayStart:
		r.drawCentered(mid-2, w, "V O I D   A S C E N T", style)
		r.drawCentered(mid, w, "[N] normal   [T] test range   [R] rogue", bg.Foreground(RgbBannerText))
		r.drawCentered(mid+1, w, "move: arrows/wasd  fire: space  dash: x  pause: p  mute: m  quit: q", bg.Foreground(RgbBannerText))
	case OverlayPaused:
		r.drawCentered(mid, w, "PAUSED", style)
	case OverlayDeath:
		r.drawCentered(mid-1, w, "SIGNAL LOST", bg.Foreground(RgbHealthLow).Bold(true))
		r.drawCentered(mid+1, w, progressBar(f.Progress, 20), bg.Foreground(RgbHealthLow))
	case OverlayTransition:
		r.drawCentered(mid-1, w, fmt.Sprintf("LEVEL %d COMPLETE", f.Level), style)
		r.drawCentered(mid+1, w, progressBar(f.Progress, 20), bg.Foreground(RgbBannerText))
	case OverlayChoice:
		r.drawCentered(mid-len(f.Choices)-1, w, "CHOOSE A MUTATION", style)
		for i, c := range f.Choices {
			r.drawCentered(mid-len(f.Choices)+1+i, w, fmt.Sprintf("[%d] %s", i+1, c), bg.Foreground(RgbBannerText))
		}
	case OverlayGameOver:
		r.drawCentered(mid-1, w, "GAME OVER", bg.Foreground(RgbHealthLow).Bold(true))
		r.drawCentered(mid+1, w, fmt.Sprintf("final score %d", f.Score), style)
		r.drawCentered(mid+2, w, "[N] [T] [R] to play again, [Q] to quit", bg.Foreground(RgbBannerText))
	}
}

func progressBar(p float64, width int) string {
	p = math.Max(0, math.Min(1, p))
	n := int(p * float64(width))
	return "[" + strings.Repeat("=", n) + strings.Repeat(" ", width-n) + "]"
}
