package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProxyConfigDefaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	cfg, err := LoadProxyConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8787", cfg.Addr)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Model)
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadProxyConfigOverrides(t *testing.T) {
	t.Setenv(APIKeyEnv, "secret")
	path := writeConfig(t, `
addr: "127.0.0.1:9000"
upstreamTimeout: 5s
logLevel: debug
development: true
`)

	cfg, err := LoadProxyConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Development)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Model, "unset fields keep defaults")
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestLoadProxyConfigIgnoresKeyInFile(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	path := writeConfig(t, "APIKey: leaked\n")

	cfg, err := LoadProxyConfig(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadProxyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad yaml", body: "addr: [unterminated"},
		{name: "empty model", body: `model: ""`},
		{name: "negative timeout", body: "upstreamTimeout: -1s"},
		{name: "zero body limit", body: "maxBodyBytes: 0"},
		{name: "unknown level", body: "logLevel: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProxyConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadProxyConfigMissingFile(t *testing.T) {
	_, err := LoadProxyConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
