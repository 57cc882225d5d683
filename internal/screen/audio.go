package screen

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Star-Shoot/internal/game"
	"github.com/Garsondee/Star-Shoot/internal/sound"
)

// musicFadeFrames is how long the music takes to fade after the match ends.
const musicFadeFrames = game.TicksPerSecond

// Mixer plays cues from a sound bank.
type Mixer struct {
	ctx   *audio.Context
	clips [game.CueCount]*audio.Player
	music *audio.Player
	fade  int // frames of fade left, 0 when not fading
	log   zerolog.Logger
}

// NewMixer opens the audio device. Only one Mixer may exist per process.
func NewMixer(bank *sound.Bank, log zerolog.Logger) (*Mixer, error) {
	m := &Mixer{ctx: audio.NewContext(bank.SampleRate()), log: log}
	for c := game.Cue(0); int(c) < game.CueCount; c++ {
		pcm, ok := bank.Clip(c)
		if !ok {
			continue
		}
		m.clips[c] = m.ctx.NewPlayerFromBytes(pcm)
	}
	music := bank.Music()
	loop := audio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("creating music player: %w", err)
	}
	m.music = p
	return m, nil
}

// Play starts every cue in order.
func (m *Mixer) Play(cues []game.Cue) {
	for _, c := range cues {
		switch c {
		case game.CueNone:
		case game.CueMusicLoop:
			m.fade = 0
			m.music.SetVolume(1)
			if err := m.music.Rewind(); err != nil {
				m.log.Warn().Err(err).Msg("music rewind failed")
			}
			m.music.Play()
		case game.CueMusicStop:
			if m.music.IsPlaying() && m.fade == 0 {
				m.fade = musicFadeFrames
			}
		default:
			p := m.clips[c]
			if p == nil {
				m.log.Debug().Stringer("cue", c).Msg("no clip for cue")
				continue
			}
			_ = p.Rewind()
			p.Play()
		}
	}
}

// Update advances the music fade by one frame.
func (m *Mixer) Update() {
	if m.fade == 0 {
		return
	}
	m.fade--
	m.music.SetVolume(float64(m.fade) / musicFadeFrames)
	if m.fade == 0 {
		m.music.Pause()
	}
}

// Close releases every player.
func (m *Mixer) Close() error {
	for _, p := range m.clips {
		if p != nil {
			_ = p.Close()
		}
	}
	return m.music.Close()
}
