package systems

import (
	"fmt"
	"testing"
	"time"

	cfg "github.com/automoto/poetics/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SettingsStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := OpenSettingsStore(fmt.Sprintf("poetics_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("settings storage unavailable here: %v", err)
	}
	return store
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got, "nothing saved yet")

	want := SavedSettings{SFXVolume: 0.5, Muted: true, LastTab: cfg.TabGarden}
	require.NoError(t, store.Save(want))

	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsNilStore(t *testing.T) {
	var store *SettingsStore

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
	assert.NoError(t, store.Save(SavedSettings{}))
	assert.NoError(t, (&SettingsStore{}).Save(SavedSettings{}))
}

func TestEffectiveVolume(t *testing.T) {
	assert.Equal(t, 0.75, SavedSettings{SFXVolume: 0.75}.EffectiveVolume())
	assert.Zero(t, SavedSettings{SFXVolume: 0.75, Muted: true}.EffectiveVolume())
}

func TestNextVolume(t *testing.T) {
	tests := []struct {
		current, want float64
	}{
		{current: 0, want: 0.25},
		{current: 0.25, want: 0.5},
		{current: 0.6, want: 0.75},
		{current: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.want, NextVolume(tt.current))
		})
	}
}
