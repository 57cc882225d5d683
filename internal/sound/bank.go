// Package sound synthesises the game's sound effects and music loop as
// 16-bit little-endian stereo PCM, ready for any byte-oriented player.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/Star-Shoot/internal/game"
)

// Config controls synthesis.
type Config struct {
	SampleRate   int
	MasterVolume float64 // 0-1
	MusicVolume  float64 // 0-1, applied on top of MasterVolume
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, MasterVolume: 0.6, MusicVolume: 0.35}
}

// Bank holds pre-rendered clips for every one-shot cue plus the music loop.
type Bank struct {
	rate  beep.SampleRate
	clips [game.CueCount][]byte
	music []byte
}

// NewBank renders all sounds for cfg.
func NewBank(cfg Config) (*Bank, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sound: invalid sample rate %d", cfg.SampleRate)
	}
	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 || cfg.MusicVolume < 0 || cfg.MusicVolume > 1 {
		return nil, fmt.Errorf("sound: volumes must be within 0-1, got master=%v music=%v",
			cfg.MasterVolume, cfg.MusicVolume)
	}
	b := &Bank{rate: beep.SampleRate(cfg.SampleRate)}
	for c := game.Cue(0); int(c) < game.CueCount; c++ {
		gen, ok := effectTable[c]
		if !ok {
			continue
		}
		s, d := gen(b.rate)
		b.clips[c] = Render(newVolume(s, cfg.MasterVolume), b.rate.N(d))
	}
	music, d, err := musicLoop(b.rate)
	if err != nil {
		return nil, fmt.Errorf("sound: music: %w", err)
	}
	b.music = Render(newVolume(music, cfg.MasterVolume*cfg.MusicVolume), b.rate.N(d))
	return b, nil
}

// SampleRate returns the rate every clip was rendered at.
func (b *Bank) SampleRate() int { return int(b.rate) }

// Clip returns the PCM for a one-shot cue.
func (b *Bank) Clip(c game.Cue) ([]byte, bool) {
	if c < 0 || int(c) >= game.CueCount || b.clips[c] == nil {
		return nil, false
	}
	return b.clips[c], true
}

// Music returns one period of the background loop.
func (b *Bank) Music() []byte { return b.music }

type effectFunc func(rate beep.SampleRate) (beep.Streamer, time.Duration)

var effectTable = map[game.Cue]effectFunc{
	game.CueShoot:       shootSound,
	game.CueBeam:        beamSound,
	game.CueBoom:        boomSound,
	game.CueSpecialBomb: specialBombSound,
	game.CueExplosion:   explosionSound,
	game.CueItemPickup:  pickupSound,
}

// shootSound is a short falling square chirp.
func shootSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	d := 90 * time.Millisecond
	osc := NewSweep(1400, 600, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.35), d
}

// beamSound is a bright rising saw with a sine shimmer on top.
func beamSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	d := 220 * time.Millisecond
	saw := NewEnvelope(NewSweep(500, 2200, d, WaveSaw, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
	sine := NewEnvelope(NewSweep(1000, 4400, d, WaveSine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
	return beep.Mix(newVolume(saw, 0.3), newVolume(sine, 0.2)), d
}

const (
	boomNoiseSeed      = 0x5eed
	explosionNoiseSeed = 0xb1a57
)

// boomSound is a low thud of noise over a falling sine.
func boomSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	d := 160 * time.Millisecond
	body := NewEnvelope(NewSweep(180, 60, d, WaveSine, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
	noise := NewEnvelope(NewNoise(boomNoiseSeed, d, rate), d, 1*time.Millisecond, 140*time.Millisecond, rate)
	return beep.Mix(newVolume(body, 0.6), newVolume(noise, 0.15)), d
}

// specialBombSound is a warbling descending square.
func specialBombSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	step := 60 * time.Millisecond
	var parts []beep.Streamer
	for i, f := range []float64{900, 700, 520, 380} {
		osc := NewSweep(f, f*0.8, step, WaveSquare, rate)
		vol := 0.3 - float64(i)*0.04
		parts = append(parts, newVolume(NewEnvelope(osc, step, time.Millisecond, 20*time.Millisecond, rate), vol))
	}
	return beep.Seq(parts...), step * 4
}

// explosionSound is a long noise burst with a deep rumble.
func explosionSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	d := 700 * time.Millisecond
	noise := NewEnvelope(NewNoise(explosionNoiseSeed, d, rate), d, 3*time.Millisecond, 600*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(90, 30, d, WaveSine, rate), d, 3*time.Millisecond, 500*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.45), newVolume(rumble, 0.6)), d
}

// pickupSound is a two-note chime (B5 then E6).
func pickupSound(rate beep.SampleRate) (beep.Streamer, time.Duration) {
	n1d, n2d := 70*time.Millisecond, 160*time.Millisecond
	n1 := NewEnvelope(NewOscillator(noteFreq(83), n1d, WaveSquare, rate), n1d, 2*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(noteFreq(88), n2d, WaveSquare, rate), n2d, 2*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.3), n1d + n2d
}

// musicNotes is the bass line of the background loop, one MIDI note per beat.
var musicNotes = []int{45, 45, 52, 45, 48, 45, 52, 50, 43, 43, 50, 43, 47, 43, 50, 52}

const musicBeat = 180 * time.Millisecond

// musicLoop plays a square bass line with a quiet sine drone underneath.
func musicLoop(rate beep.SampleRate) (beep.Streamer, time.Duration, error) {
	var bass []beep.Streamer
	for _, n := range musicNotes {
		osc := NewOscillator(noteFreq(n), musicBeat, WaveSquare, rate)
		bass = append(bass, NewEnvelope(osc, musicBeat, 4*time.Millisecond, 90*time.Millisecond, rate))
	}
	total := musicBeat * time.Duration(len(musicNotes))

	drone, err := generators.SineTone(rate, noteFreq(33))
	if err != nil {
		return nil, 0, err
	}
	mixed := beep.Mix(
		newVolume(beep.Seq(bass...), 0.5),
		newVolume(beep.Take(rate.N(total), drone), 0.25),
	)
	return mixed, total, nil
}
