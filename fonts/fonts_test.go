package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Label, Title, Small} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
	assert.Greater(t, Title.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
	assert.False(t, Loaded("broken"))
	assert.Panics(t, func() { FontName("missing").Get() })
}
