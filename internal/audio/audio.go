// Package audio plays short synthesized effects for bounces, boosts and
// collected money using beep's speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

const sampleRate = beep.SampleRate(44100)

// Player plays effects on the local speaker. The zero value and a
// player returned by Silent discard everything.
type Player struct {
	mu     sync.Mutex
	live   bool
	volume float64
}

// Init initializes the speaker. volume is a gain in [0,1].
func Init(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Player{live: true, volume: volume}, nil
}

// Silent returns a player that never opens an audio device.
func Silent() *Player {
	return &Player{}
}

// Close shuts down the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Close()
		p.live = false
	}
}

func (p *Player) play(s beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	live, vol := p.live, p.volume
	p.mu.Unlock()
	if !live {
		return
	}
	speaker.Play(withVolume(s, vol))
}

// Bounce plays the contact sound for an obstacle kind.
func (p *Player) Bounce(kind physics.Kind) { p.play(BounceSound(kind)) }

// Collect plays the money bag pickup chime.
func (p *Player) Collect() { p.play(CollectSound()) }

// LevelComplete plays the rising completion jingle.
func (p *Player) LevelComplete() { p.play(CompleteSound()) }

// RunFailed plays the falling tone for a run that missed its goal.
func (p *Player) RunFailed() { p.play(FailSound()) }

// square generates a square wave, the retro tone used for contacts.
func square(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	phase := 0.0
	step := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if n <= 0 {
				return i, false
			}
			val := 0.2
			if phase >= 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += step
			phase -= math.Floor(phase)
			n--
		}
		return len(samples), true
	})
}

// sine generates a sine tone with a linear fade-out.
func sine(freq float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, false
			}
			fade := 1 - float64(pos)/float64(total)
			val := math.Sin(step*float64(pos)) * 0.3 * fade
			samples[i][0] = val
			samples[i][1] = val
			pos++
		}
		return len(samples), true
	})
}

// withVolume scales a streamer by a linear gain.
// math.Log2(0) is -Inf, so zero gain is made silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BounceSound returns the contact sound for an obstacle kind.
func BounceSound(kind physics.Kind) beep.Streamer {
	switch kind {
	case physics.KindPad:
		return square(660, 40*time.Millisecond)
	case physics.KindBooster:
		return beep.Seq(
			square(520, 30*time.Millisecond),
			square(780, 30*time.Millisecond),
			square(1040, 40*time.Millisecond),
		)
	default:
		return square(330, 30*time.Millisecond)
	}
}

// CollectSound returns a two-partial bell.
func CollectSound() beep.Streamer {
	return beep.Mix(
		sine(880, 180*time.Millisecond),
		withVolume(sine(1760, 120*time.Millisecond), 0.4),
	)
}

// CompleteSound returns an ascending arpeggio.
func CompleteSound() beep.Streamer {
	return beep.Seq(
		sine(523, 100*time.Millisecond),
		sine(659, 100*time.Millisecond),
		sine(784, 100*time.Millisecond),
		sine(1047, 220*time.Millisecond),
	)
}

// FailSound returns a descending pair of square tones.
func FailSound() beep.Streamer {
	return beep.Seq(
		square(440, 90*time.Millisecond),
		square(294, 140*time.Millisecond),
	)
}
