package config

import "time"

// CueID represents a logical synthesized sound cue
type CueID int

const (
	CueNone CueID = iota
	CueJump
	CueCollect
)

func (c CueID) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	default:
		return "none"
	}
}

// Waveform selects the oscillator shape for a cue
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
)

// ToneConfig describes one enveloped tone: an exponential frequency sweep
// and an exponential gain ramp, each over its own duration.
type ToneConfig struct {
	Wave      Waveform
	FromHz    float64
	ToHz      float64
	Sweep     time.Duration
	FromGain  float64
	ToGain    float64
	Envelope  time.Duration
	TotalTime time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[CueID]ToneConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Tones: map[CueID]ToneConfig{
			CueJump: {
				Wave:      WaveSine,
				FromHz:    150,
				ToHz:      300,
				Sweep:     100 * time.Millisecond,
				FromGain:  0.1,
				ToGain:    0.01,
				Envelope:  100 * time.Millisecond,
				TotalTime: 100 * time.Millisecond,
			},
			CueCollect: {
				Wave:      WaveTriangle,
				FromHz:    500,
				ToHz:      1000,
				Sweep:     100 * time.Millisecond,
				FromGain:  0.1,
				ToGain:    0.01,
				Envelope:  300 * time.Millisecond,
				TotalTime: 300 * time.Millisecond,
			},
		},
	}
}
