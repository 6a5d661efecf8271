package assets

import (
	"fmt"
	"math"

	"github.com/vovakirdan/glyphrun/internal/content"
)

// SampleRate is the synthesis and playback rate in Hz.
const SampleRate = 44100

// Sound is an immutable generated audio asset: mono PCM samples with the
// attack/release envelope and gain already applied.
type Sound struct {
	Rate    int
	Samples []float64
}

// Duration returns the sound length in seconds.
func (s *Sound) Duration() float64 {
	return float64(len(s.Samples)) / float64(s.Rate)
}

// GenerateSound synthesizes a style config into PCM samples. Pure and
// deterministic: noise uses a local PRNG seeded from the style itself, so
// the same config always produces parameter-identical output.
func GenerateSound(style content.SoundStyle) (*Sound, error) {
	if style.Duration <= 0 {
		return nil, fmt.Errorf("sound duration must be positive, got %v", style.Duration)
	}

	total := int(style.Duration * SampleRate)
	if total <= 0 {
		total = 1
	}
	buf := make([]float64, total)

	phase := 0.0
	phaseInc := style.Frequency / SampleRate
	rng := newNoiseRNG(style)

	for i := 0; i < total; i++ {
		switch style.Wave {
		case "sine":
			buf[i] = math.Sin(2 * math.Pi * phase)
		case "square":
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case "saw":
			buf[i] = 2.0 * (phase - 0.5)
		case "noise":
			buf[i] = rng.float()*2 - 1
		default:
			return nil, fmt.Errorf("unknown wave %q", style.Wave)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, style.Attack, style.Release)

	gain := style.Gain
	if gain <= 0 || gain > 1 {
		gain = 1
	}
	if gain != 1 {
		for i := range buf {
			buf[i] *= gain
		}
	}

	return &Sound{Rate: SampleRate, Samples: buf}, nil
}

// applyEnvelope shapes the buffer with a linear attack and release in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * SampleRate)
	releaseSamples := int(releaseSec * SampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// noiseRNG is a xorshift64 generator seeded from the style, keeping noise
// synthesis deterministic without touching global randomness.
type noiseRNG struct {
	state uint64
}

func newNoiseRNG(style content.SoundStyle) *noiseRNG {
	seed := math.Float64bits(style.Frequency) ^ math.Float64bits(style.Duration)<<1
	if seed == 0 {
		seed = 88172645463325252
	}
	return &noiseRNG{state: seed}
}

func (r *noiseRNG) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a value in [0, 1).
func (r *noiseRNG) float() float64 {
	return float64(r.next()>>11) / (1 << 53)
}
