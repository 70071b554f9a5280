package sound

import (
	"log"
	"sync"

	cfg "github.com/automoto/poetics/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// The audio context is process-wide and may only be created once
var (
	audioContext *audio.Context
	audioOnce    sync.Once
)

func sharedContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// Render synthesizes cue at the given volume. Unknown cues render nothing.
func Render(cue cfg.CueID, volume float64) []byte {
	tone, ok := cfg.Audio.Tones[cue]
	if !ok {
		return nil
	}
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	return Encode(newVolume(NewTone(tone, rate), volume))
}

// Player plays synthesized cues. Rendered PCM is cached per cue until the
// volume changes.
type Player struct {
	mu     sync.Mutex
	volume float64
	cache  map[cfg.CueID][]byte
}

func NewPlayer(volume float64) *Player {
	return &Player{
		volume: clampVolume(volume),
		cache:  make(map[cfg.CueID][]byte),
	}
}

// SetVolume changes the volume for cues played from now on
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v = clampVolume(v)
	if v == p.volume {
		return
	}
	p.volume = v
	clear(p.cache)
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Preload renders every configured cue so the first play does not stall
func (p *Player) Preload() {
	for cue := range cfg.Audio.Tones {
		p.pcm(cue)
	}
}

// Play starts cue and returns immediately. Silent players never touch the
// audio device.
func (p *Player) Play(cue cfg.CueID) {
	pcm := p.pcm(cue)
	if len(pcm) == 0 {
		return
	}
	player := sharedContext().NewPlayerFromBytes(pcm)
	player.Play()
}

func (p *Player) pcm(cue cfg.CueID) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.volume <= 0 {
		return nil
	}
	if pcm, ok := p.cache[cue]; ok {
		return pcm
	}
	pcm := Render(cue, p.volume)
	if pcm == nil {
		log.Printf("[sound] no tone configured for cue %s", cue)
	}
	p.cache[cue] = pcm
	return pcm
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
