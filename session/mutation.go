package session

import (
	"time"

	"github.com/lixenwraith/void-ascent/vmath"
)

// Mutation is a rogue-mode upgrade offered between layers
type Mutation struct {
	Name        string
	Description string
	apply       func(s *Session)
}

var mutationPool = []Mutation{
	{"Long Fuse", "Combo window +1.5s", func(s *Session) {
		s.score.SetComboWindow(s.score.ComboWindow() + 1500*time.Millisecond)
	}},
	{"Overclock", "Fire rate +25%", func(s *Session) { s.weapon.RateMult *= 1.25 }},
	{"Hot Rounds", "Shot damage +1", func(s *Session) { s.weapon.Damage++ }},
	{"Split Barrel", "One extra shot per volley", func(s *Session) { s.weapon.Spread++ }},
	{"Hull Plating", "Max health +25", func(s *Session) {
		s.player.MaxHealth += 25
		s.player.heal(25)
	}},
	{"Deflector", "Shield charge +1", func(s *Session) { s.player.Shield++ }},
	{"Volatile Core", "Chain radius +30%", func(s *Session) {
		s.enemies.SetChainRadiusScale(s.enemies.ChainRadiusScale() * 1.3)
	}},
	{"Blink Drive", "Dash cooldown -30%", func(s *Session) { s.player.DashCooldownScale *= 0.7 }},
	{"Afterburner", "Move speed +15%", func(s *Session) { s.player.SpeedScale *= 1.15 }},
}

// mutationDeck draws mutations without replacement for one run
type mutationDeck struct {
	remaining []int
}

func newMutationDeck() *mutationDeck {
	d := &mutationDeck{remaining: make([]int, len(mutationPool))}
	for i := range d.remaining {
		d.remaining[i] = i
	}
	return d
}

// draw takes up to n mutations; the deck shrinks as choices are offered
func (d *mutationDeck) draw(rng *vmath.FastRand, n int) []Mutation {
	rng.Shuffle(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
	n = min(n, len(d.remaining))
	out := make([]Mutation, n)
	for i := 0; i < n; i++ {
		out[i] = mutationPool[d.remaining[i]]
	}
	d.remaining = d.remaining[n:]
	return out
}
