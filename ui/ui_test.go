package ui

import (
	"strings"
	"testing"

	cfg "github.com/automoto/poetics/config"
	"github.com/automoto/poetics/systems"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		want string
	}{
		{name: "fits", in: "a chair", cols: 10, want: "a chair"},
		{name: "breaks on spaces", in: "the chair was a throne", cols: 10, want: "the chair\nwas a\nthrone"},
		{name: "collapses runs of spaces", in: "one   two", cols: 20, want: "one two"},
		{name: "hard splits long words", in: "abcdefghij xy", cols: 4, want: "abcd\nefgh\nij\nxy"},
		{name: "keeps paragraphs", in: "one\n\ntwo", cols: 10, want: "one\n\ntwo"},
		{name: "counts runes", in: "café café", cols: 4, want: "café\ncafé"},
		{name: "no limit", in: "left as is", cols: 0, want: "left as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.in, tt.cols))
		})
	}
}

func TestWrapTextLineLength(t *testing.T) {
	text := strings.Repeat("modernism rejected ornament as crime ", 12)
	for _, line := range strings.Split(WrapText(text, cfg.Lab.IconoclastWrapColumns), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), cfg.Lab.IconoclastWrapColumns)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "\"silence returned.\"", Quote("silence returned.", 64))
}

func TestPulseCyclesDots(t *testing.T) {
	p := NewPulse()
	assert.Equal(t, 1, p.Dots())

	seen := map[int]bool{}
	for i := 0; i < pulsePeriod; i++ {
		n := p.Step()
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
		seen[n] = true
	}
	assert.Len(t, seen, 3, "every dot count shows up within one sweep")

	p.Reset()
	assert.Equal(t, 1, p.Dots())
}

func TestThinking(t *testing.T) {
	assert.Equal(t, "consulting the archive.", Thinking(cfg.Lab.IconoclastThinking, 1))
	assert.Equal(t, "consulting the archive...", Thinking(cfg.Lab.IconoclastThinking, 3))
}

func TestTabOrder(t *testing.T) {
	order := TabOrder()
	assert.Equal(t, []cfg.TabID{cfg.TabIconoclast, cfg.TabGarden, cfg.TabField}, order)
	assert.Len(t, order, int(cfg.TabCount))
	for _, id := range order {
		assert.NotEmpty(t, cfg.Lab.Tabs[id].Label)
	}
}

func TestVolumeLabel(t *testing.T) {
	tests := []struct {
		name     string
		settings systems.SavedSettings
		want     string
	}{
		{name: "muted", settings: systems.SavedSettings{SFXVolume: 0.75, Muted: true}, want: "sfx off"},
		{name: "zero", settings: systems.SavedSettings{SFXVolume: 0}, want: "sfx off"},
		{name: "quarter", settings: systems.SavedSettings{SFXVolume: 0.25}, want: "sfx 25%"},
		{name: "full", settings: systems.SavedSettings{SFXVolume: 1}, want: "sfx 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VolumeLabel(tt.settings))
		})
	}
}
