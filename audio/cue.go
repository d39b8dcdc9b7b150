package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a sound effect
type Cue int

const (
	CueSpawn Cue = iota
	CueKill
	CueChainKill
	CuePlayerHit
	CueShieldHit
	CueShot
	CuePickup
	CueLevelUp
	CueComboTier
	CueMultiplierUp
	CueMultiplierLost
	CueCluster
	CueLevelComplete
	CueWormhole
	CueDeath
	CueGameOver
	CueCount
)

var cueNames = [...]string{
	CueSpawn:          "spawn",
	CueKill:           "kill",
	CueChainKill:      "chain_kill",
	CuePlayerHit:      "player_hit",
	CueShieldHit:      "shield_hit",
	CueShot:           "shot",
	CuePickup:         "pickup",
	CueLevelUp:        "level_up",
	CueComboTier:      "combo_tier",
	CueMultiplierUp:   "multiplier_up",
	CueMultiplierLost: "multiplier_lost",
	CueCluster:        "cluster",
	CueLevelComplete:  "level_complete",
	CueWormhole:       "wormhole",
	CueDeath:          "death",
	CueGameOver:       "game_over",
}

func (c Cue) String() string {
	if c >= 0 && c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// cueGain is the per-cue mix level before master volume
var cueGain = [CueCount]float64{
	CueSpawn:          0.15,
	CueKill:           0.4,
	CueChainKill:      0.45,
	CuePlayerHit:      0.6,
	CueShieldHit:      0.5,
	CueShot:           0.12,
	CuePickup:         0.35,
	CueLevelUp:        0.5,
	CueComboTier:      0.45,
	CueMultiplierUp:   0.35,
	CueMultiplierLost: 0.4,
	CueCluster:        0.4,
	CueLevelComplete:  0.55,
	CueWormhole:       0.5,
	CueDeath:          0.7,
	CueGameOver:       0.6,
}

// Synth builds a fresh finite streamer for the cue at the given gain
func Synth(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	if c < 0 || c >= CueCount {
		return nil
	}
	ms := time.Millisecond

	var s beep.Streamer
	switch c {
	case CueSpawn:
		s = tone(220, 40*ms, WaveSine, rate)
	case CueKill:
		s = beep.Mix(
			newVolume(sweep(660, 220, 90*ms, WaveSquare, rate), 0.6),
			newVolume(NewEnvelope(NewOscillator(0, 60*ms, WaveNoise, rate), 60*ms, 2*ms, 50*ms, rate), 0.4),
		)
	case CueChainKill:
		s = beep.Mix(
			newVolume(sweep(440, 110, 160*ms, WaveSaw, rate), 0.6),
			newVolume(NewEnvelope(NewOscillator(0, 140*ms, WaveNoise, rate), 140*ms, 2*ms, 120*ms, rate), 0.4),
		)
	case CuePlayerHit:
		s = tone(100, 120*ms, WaveSaw, rate)
	case CueShieldHit:
		s = beep.Mix(
			newVolume(tone(1320, 120*ms, WaveSine, rate), 0.6),
			newVolume(tone(1980, 120*ms, WaveSine, rate), 0.4),
		)
	case CueShot:
		s = sweep(1200, 800, 30*ms, WaveSquare, rate)
	case CuePickup:
		s = arpeggio([]float64{880, 1320}, 50*ms, WaveSine, rate)
	case CueLevelUp:
		s = arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 70*ms, WaveSquare, rate)
	case CueComboTier:
		s = arpeggio([]float64{659.25, 987.77}, 80*ms, WaveSine, rate)
	case CueMultiplierUp:
		s = sweep(440, 880, 70*ms, WaveSine, rate)
	case CueMultiplierLost:
		s = sweep(440, 110, 250*ms, WaveSaw, rate)
	case CueCluster:
		s = arpeggio([]float64{783.99, 1046.5, 1318.5}, 45*ms, WaveSine, rate)
	case CueLevelComplete:
		s = arpeggio([]float64{392, 523.25, 659.25, 783.99, 1046.5}, 110*ms, WaveSine, rate)
	case CueWormhole:
		s = beep.Mix(
			newVolume(sweep(110, 880, 600*ms, WaveSine, rate), 0.7),
			newVolume(sweep(55, 440, 600*ms, WaveSaw, rate), 0.3),
		)
	case CueDeath:
		s = beep.Mix(
			newVolume(sweep(330, 40, 900*ms, WaveSaw, rate), 0.5),
			newVolume(NewEnvelope(NewOscillator(0, 900*ms, WaveNoise, rate), 900*ms, 5*ms, 800*ms, rate), 0.5),
		)
	case CueGameOver:
		s = arpeggio([]float64{392, 349.23, 311.13, 261.63}, 200*ms, WaveSquare, rate)
	}
	return newVolume(s, cueGain[c]*master)
}
