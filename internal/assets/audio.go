package assets

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the audio output device. Disabled players (tests, SSH sessions,
// --no-audio) accept Play calls and do nothing, so callers never branch.
type Player struct {
	enabled bool
	rate    beep.SampleRate
}

// NewPlayer initializes the speaker when enabled. Speaker setup is the one
// asynchronous resource acquisition in the runtime; boot waits for it before
// declaring asset generation finished.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{
		enabled: enabled,
		rate:    beep.SampleRate(SampleRate),
	}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("assets: speaker init: %w", err)
	}
	return p, nil
}

// Enabled reports whether audio output is live.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play starts playback of a generated sound. Non-blocking; the speaker mixes
// concurrent sounds. A nil sound is a no-op.
func (p *Player) Play(s *Sound) {
	if p == nil || !p.enabled || s == nil {
		return
	}
	speaker.Play(&soundStreamer{sound: s})
}

// Close releases the audio device.
func (p *Player) Close() {
	if p != nil && p.enabled {
		speaker.Close()
	}
}

// soundStreamer adapts a cached mono Sound to a beep.Streamer.
// A fresh streamer is created per Play so the shared buffer stays immutable.
type soundStreamer struct {
	sound *Sound
	pos   int
}

func (st *soundStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if st.pos >= len(st.sound.Samples) {
		return 0, false
	}
	for i := range samples {
		if st.pos >= len(st.sound.Samples) {
			return i, true
		}
		v := st.sound.Samples[st.pos]
		samples[i][0] = v
		samples[i][1] = v
		st.pos++
	}
	return len(samples), true
}

func (st *soundStreamer) Err() error {
	return nil
}
