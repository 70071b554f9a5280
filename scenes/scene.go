// Package scenes wires the lab's simulations, controls and widgets into
// Ebiten scenes, one per prototype tab.
package scenes

import (
	"image"
	"log"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/proxy"
	"github.com/automoto/poetics/sound"
	"github.com/automoto/poetics/systems"
	"github.com/automoto/poetics/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is a tab's Ebiten-facing lifecycle. Close is called when the tab is
// left; Update and Draw are no-ops afterwards.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

// Lab is what every tab shares: settings, audio, the proxy client and the
// current canvas bounds
type Lab struct {
	Changer  SceneChanger
	Store    *systems.SettingsStore
	Settings systems.SavedSettings
	Player   *sound.Player
	Client   *proxy.Client
	Bounds   func() image.Rectangle
}

// Open builds the scene for tab and remembers it as the last tab
func (l *Lab) Open(tab cfg.TabID) Scene {
	if tab < 0 || tab >= cfg.TabCount {
		tab = cfg.Lab.DefaultTab
	}
	if l.Settings.LastTab != tab {
		l.Settings.LastTab = tab
		l.Store.SaveQuietly(l.Settings)
	}
	log.Printf("[lab] opening %s", cfg.Lab.Tabs[tab].Title)

	switch tab {
	case cfg.TabGarden:
		return NewGardenScene(l)
	case cfg.TabField:
		return NewFieldScene(l)
	default:
		return NewIconoclastScene(l)
	}
}

// SwitchTo moves the host to tab
func (l *Lab) SwitchTo(tab cfg.TabID) {
	if l.Changer == nil {
		return
	}
	l.Changer.ChangeScene(l.Open(tab))
}

// ToggleVolume steps the cue volume and persists the result
func (l *Lab) ToggleVolume() systems.SavedSettings {
	l.Settings = NextSettings(l.Settings)
	if l.Player != nil {
		l.Player.SetVolume(l.Settings.EffectiveVolume())
	}
	l.Store.SaveQuietly(l.Settings)
	return l.Settings
}

// NextSettings advances the volume toggle: through the volume steps, with the
// zero step meaning muted. Unmuting resumes from the first audible step.
func NextSettings(s systems.SavedSettings) systems.SavedSettings {
	next := systems.NextVolume(s.EffectiveVolume())
	if next <= 0 {
		s.Muted = true
		return s
	}
	s.Muted = false
	s.SFXVolume = next
	return s
}

// Size returns the canvas size, falling back to the configured window
func (l *Lab) Size() (float64, float64) {
	if l.Bounds != nil {
		if b := l.Bounds(); !b.Empty() {
			return float64(b.Dx()), float64(b.Dy())
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

func (l *Lab) tabBar(active cfg.TabID, onVolume func(systems.SavedSettings)) ui.TabBarConfig {
	return ui.TabBarConfig{
		Active:   active,
		Settings: l.Settings,
		OnSelect: l.SwitchTo,
		OnVolume: func() {
			s := l.ToggleVolume()
			if onVolume != nil {
				onVolume(s)
			}
		},
	}
}
