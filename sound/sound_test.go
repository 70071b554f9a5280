package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	cfg "github.com/automoto/poetics/config"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = beep.SampleRate(44100)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 333)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestExpRamp(t *testing.T) {
	assert.Equal(t, 150.0, expRamp(150, 300, 0, 100))
	assert.InDelta(t, 150*math.Sqrt2, expRamp(150, 300, 50, 100), 1e-9)
	assert.Equal(t, 300.0, expRamp(150, 300, 100, 100))
	assert.Equal(t, 300.0, expRamp(150, 300, 5000, 100), "holds the target after the ramp")
	assert.Equal(t, 0.01, expRamp(0.1, 0.01, 0, 0))
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []cfg.Waveform{cfg.WaveSine, cfg.WaveTriangle} {
		samples := drain(NewOscillator(wave, 500, 1000, 100*time.Millisecond, 300*time.Millisecond, rate))
		require.Len(t, samples, rate.N(300*time.Millisecond))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("sample %d out of range or not mono: %v", i, s)
			}
		}
	}
}

func TestTriangleShape(t *testing.T) {
	samples := drain(NewOscillator(cfg.WaveTriangle, 441, 441, 0, 10*time.Millisecond, rate))
	// 100 samples per period starting at phase 0
	assert.InDelta(t, -1, samples[0][0], 1e-9)
	assert.InDelta(t, 0, samples[25][0], 1e-9)
	assert.InDelta(t, 1, samples[50][0], 1e-9)
}

func TestEnvelopeDecays(t *testing.T) {
	samples := drain(NewEnvelope(NewOscillator(cfg.WaveSine, 441, 441, 0, 100*time.Millisecond, rate), 0.1, 0.01, 100*time.Millisecond, rate))
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	assert.InDelta(t, 0.1, peak(0, 100), 2e-3)
	assert.Less(t, peak(len(samples)-100, len(samples)), 0.011)
}

func TestRender(t *testing.T) {
	jump := Render(cfg.CueJump, 1)
	assert.Len(t, jump, rate.N(100*time.Millisecond)*4, "16-bit stereo frames")

	collect := Render(cfg.CueCollect, 1)
	assert.Len(t, collect, rate.N(300*time.Millisecond)*4)

	assert.Nil(t, Render(cfg.CueNone, 1))

	loud := maxSample(Render(cfg.CueJump, 1))
	quiet := maxSample(Render(cfg.CueJump, 0.25))
	assert.InDelta(t, float64(loud)/4, float64(quiet), 2)
	assert.Zero(t, maxSample(Render(cfg.CueJump, 0)))
}

func maxSample(pcm []byte) int16 {
	var m int16
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

func TestToInt16(t *testing.T) {
	assert.Equal(t, int16(math.MaxInt16), toInt16(2))
	assert.Equal(t, int16(-math.MaxInt16), toInt16(-2))
	assert.Zero(t, toInt16(0))
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(3)
	assert.Equal(t, 1.0, p.Volume())

	p.Preload()
	assert.Len(t, p.cache, len(cfg.Audio.Tones))

	p.SetVolume(0.5)
	assert.Empty(t, p.cache, "a volume change drops rendered cues")

	p.SetVolume(-1)
	assert.Zero(t, p.Volume())
	assert.NotPanics(t, func() { p.Play(cfg.CueJump) }, "a muted player never opens the device")
	assert.Nil(t, p.pcm(cfg.CueCollect))
}
