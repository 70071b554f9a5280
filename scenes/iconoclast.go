package scenes

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems"
	"github.com/automoto/poetics/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Generator produces the Iconoclast's text for an archetype
type Generator interface {
	Generate(ctx context.Context, input string) (string, error)
}

var errNoClient = errors.New("no proxy client configured")

// ResultText is what the Iconoclast shows for a finished request
func ResultText(text string, err error) string {
	if err != nil {
		return cfg.Lab.IconoclastFailure
	}
	if text == "" {
		return cfg.Lab.IconoclastEmpty
	}
	return text
}

// Consult asks gen about word and returns the text to show. It never returns
// sooner than minDelay unless ctx is cancelled first.
func Consult(ctx context.Context, gen Generator, word string, minDelay time.Duration) string {
	timer := time.NewTimer(minDelay)
	defer timer.Stop()

	var (
		text string
		err  error
	)
	if gen == nil {
		err = errNoClient
	} else {
		text, err = gen.Generate(ctx, word)
	}
	if err != nil {
		log.Printf("[iconoclast] request for %q failed: %v", word, err)
	}

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return ResultText(text, err)
}

// IconoclastScene is the archetype form backed by the proxy
type IconoclastScene struct {
	lab   *Lab
	ui    *ui.IconoclastUI
	pulse *ui.Pulse
	once  sync.Once

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	result *string
	closed bool
}

func NewIconoclastScene(lab *Lab) *IconoclastScene {
	return &IconoclastScene{lab: lab}
}

func (is *IconoclastScene) configure() {
	is.ctx, is.cancel = context.WithCancel(context.Background())
	is.pulse = ui.NewPulse()
	is.ui = ui.NewIconoclastUI(is.lab.tabBar(cfg.TabIconoclast, func(s systems.SavedSettings) {
		is.ui.SetVolume(s)
	}))
	is.ui.OnSubmit = is.submit
}

func (is *IconoclastScene) submit(word string) {
	is.ui.SetPending(true)
	is.ui.SetOutput("")
	is.pulse.Reset()
	is.ui.SetStatus(ui.Thinking(cfg.Lab.IconoclastThinking, is.pulse.Dots()))

	var gen Generator
	if is.lab.Client != nil {
		gen = is.lab.Client
	}
	minDelay := time.Duration(cfg.Lab.IconoclastMinDelayMs) * time.Millisecond
	ctx := is.ctx

	go func() {
		text := Consult(ctx, gen, word, minDelay)
		is.mu.Lock()
		is.result = &text
		is.mu.Unlock()
	}()
}

// takeResult hands over a finished request, if any
func (is *IconoclastScene) takeResult() (string, bool) {
	is.mu.Lock()
	defer is.mu.Unlock()
	if is.result == nil {
		return "", false
	}
	text := *is.result
	is.result = nil
	return text, true
}

func (is *IconoclastScene) Update() {
	if is.isClosed() {
		return
	}
	is.once.Do(is.configure)

	is.ui.Update()
	if is.isClosed() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		is.ui.Submit()
	}

	if text, ok := is.takeResult(); ok {
		is.ui.SetPending(false)
		is.ui.SetStatus(cfg.Lab.IconoclastIdle)
		is.ui.SetOutput(text)
		return
	}

	if is.ui.Pending() {
		is.ui.SetStatus(ui.Thinking(cfg.Lab.IconoclastThinking, is.pulse.Step()))
	}
}

func (is *IconoclastScene) Draw(screen *ebiten.Image) {
	if is.isClosed() || is.ui == nil {
		return
	}
	screen.Fill(cfg.Paper)
	is.ui.Draw(screen)
}

// Close abandons any request in flight
func (is *IconoclastScene) Close() {
	is.mu.Lock()
	is.closed = true
	is.mu.Unlock()
	if is.cancel != nil {
		is.cancel()
	}
}

func (is *IconoclastScene) isClosed() bool {
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.closed
}
