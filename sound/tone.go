// Package sound synthesizes the lab's short cues and plays them through
// Ebiten's audio context.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/poetics/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// expRamp moves from a to b exponentially over n samples and holds b after.
// Both ends must be positive.
func expRamp(a, b float64, pos, n int) float64 {
	if n <= 0 || pos >= n {
		return b
	}
	return a * math.Pow(b/a, float64(pos)/float64(n))
}

// oscillator generates a waveform whose frequency sweeps exponentially
type oscillator struct {
	wave     cfg.Waveform
	fromHz   float64
	toHz     float64
	sweep    int
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator lasting duration that sweeps from
// fromHz to toHz over sweep
func NewOscillator(wave cfg.Waveform, fromHz, toHz float64, sweep, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:     wave,
		fromHz:   fromHz,
		toHz:     toHz,
		sweep:    rate.N(sweep),
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := expRamp(o.fromHz, o.toHz, o.position, o.sweep)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope scales a stream by a gain that ramps exponentially
type envelope struct {
	streamer beep.Streamer
	fromGain float64
	toGain   float64
	length   int
	position int
}

// NewEnvelope ramps the gain of s from fromGain to toGain over length
func NewEnvelope(s beep.Streamer, fromGain, toGain float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		fromGain: fromGain,
		toGain:   toGain,
		length:   rate.N(length),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := expRamp(e.fromGain, e.toGain, e.position, e.length)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// NewTone builds the streamer for one configured tone
func NewTone(tone cfg.ToneConfig, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(tone.Wave, tone.FromHz, tone.ToHz, tone.Sweep, tone.TotalTime, rate)
	return NewEnvelope(osc, tone.FromGain, tone.ToGain, tone.Envelope, rate)
}

// newVolume scales s linearly by vol. Zero or less silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Encode drains s into signed 16-bit little-endian stereo PCM, the format
// Ebiten's audio players consume
func Encode(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
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
	return int16(math.Round(v * math.MaxInt16))
}
