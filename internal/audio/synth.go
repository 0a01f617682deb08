package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveNoise
)

// ImpactPreset describes a short percussive impact: a decaying tone mixed with noise.
type ImpactPreset struct {
	Duration  time.Duration
	Frequency float64 // tone frequency in Hz
	Decay     float64 // exponential decay rate (1/s)
	NoiseMix  float64 // 0 = pure tone, 1 = pure noise
	Gain      float64
}

// Presets built-in impact clips, addressable by name from the game config.
var Presets = map[string]ImpactPreset{
	// 木箱落地/碰撞的低沉闷响
	"box_thud": {
		Duration:  180 * time.Millisecond,
		Frequency: 90,
		Decay:     22,
		NoiseMix:  0.35,
		Gain:      0.9,
	},
	// 炮弹撞击的短促脆响
	"ball_clack": {
		Duration:  120 * time.Millisecond,
		Frequency: 420,
		Decay:     38,
		NoiseMix:  0.55,
		Gain:      0.8,
	},
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator creates an oscillator; noise is seeded so clips are reproducible.
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decayEnvelope applies exp(-decay * t) to a stream
type decayEnvelope struct {
	streamer beep.Streamer
	position int
	decay    float64
	rate     beep.SampleRate
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.position) / float64(e.rate)
		vol := math.Exp(-e.decay * t)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so 0 is made silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewImpact builds the streamer for an impact preset.
func NewImpact(p ImpactPreset, rate beep.SampleRate) beep.Streamer {
	tone := newOscillator(p.Frequency, p.Duration, WaveSine, rate)
	noise := newOscillator(0, p.Duration, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(tone, 1-p.NoiseMix),
		newVolume(noise, p.NoiseMix),
	)
	shaped := &decayEnvelope{streamer: mixed, decay: p.Decay, rate: rate}

	return beep.Take(rate.N(p.Duration), newVolume(shaped, p.Gain))
}

// RenderPCM16 drains s into interleaved 16-bit little-endian stereo PCM,
// the format Ebitengine's audio players consume.
func RenderPCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// SynthesizeImpact renders a named preset at the given sample rate.
func SynthesizeImpact(name string, sampleRate int) ([]byte, error) {
	preset, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown impact preset %q", name)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	return RenderPCM16(NewImpact(preset, beep.SampleRate(sampleRate))), nil
}

// BytesPerSecond returns the byte rate of 16-bit stereo PCM at sampleRate.
func BytesPerSecond(sampleRate int) int {
	return sampleRate * 4
}
