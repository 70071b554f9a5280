package ui

import (
	"fmt"
	"math"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems"
	"github.com/ebitenui/ebitenui/widget"
)

// TabOrder is the left to right order of the prototype tabs
func TabOrder() []cfg.TabID {
	return []cfg.TabID{cfg.TabIconoclast, cfg.TabGarden, cfg.TabField}
}

// VolumeLabel is the text of the volume toggle for settings
func VolumeLabel(settings systems.SavedSettings) string {
	v := settings.EffectiveVolume()
	if v <= 0 {
		return "sfx off"
	}
	return fmt.Sprintf("sfx %d%%", int(math.Round(v*100)))
}

// TabBarConfig describes the tab bar a screen shows
type TabBarConfig struct {
	Active   cfg.TabID
	Settings systems.SavedSettings
	OnSelect func(cfg.TabID)
	OnVolume func()
}

// TabBar is the row of prototype tabs with the volume toggle at its end.
// The active tab is drawn disabled so it cannot be selected again.
type TabBar struct {
	container *widget.Container
	tabs      map[cfg.TabID]*widget.Button
	volume    *widget.Button
}

func newTabBar(faces *Faces, c TabBarConfig) *TabBar {
	bar := &TabBar{
		container: newRow(6),
		tabs:      make(map[cfg.TabID]*widget.Button, cfg.TabCount),
	}

	for _, id := range TabOrder() {
		btn := newButton(cfg.Lab.Tabs[id].Label, &faces.Small, tabStyle, 110, 26, func() {
			if c.OnSelect != nil {
				c.OnSelect(id)
			}
		})
		btn.GetWidget().Disabled = id == c.Active
		bar.tabs[id] = btn
		bar.container.AddChild(btn)
	}

	bar.volume = newButton(VolumeLabel(c.Settings), &faces.Small, quietStyle, 80, 26, c.OnVolume)
	bar.container.AddChild(bar.volume)
	return bar
}

// SetVolume refreshes the toggle text after the settings changed
func (b *TabBar) SetVolume(settings systems.SavedSettings) {
	if t := b.volume.Text(); t != nil {
		t.Label = VolumeLabel(settings)
	}
}

func (b *TabBar) widget() *widget.Container {
	return b.container
}
