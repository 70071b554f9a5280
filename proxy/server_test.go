package proxy

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/poetics/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestHealth(t *testing.T) {
	srv := NewServer(config.DefaultProxyConfig(), nil, zap.NewNop())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsKept(t *testing.T) {
	srv := NewServer(config.DefaultProxyConfig(), nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRoutes(t *testing.T) {
	srv := NewServer(config.DefaultProxyConfig(), &fakeUpstream{text: "ok"}, zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "the endpoint answers the method itself")

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := config.DefaultProxyConfig()
	cfg.ShutdownTimeout = time.Second
	srv := NewServer(cfg, &fakeUpstream{text: "ok"}, zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	client.CloseIdleConnections()
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultProxyConfig()
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))

	cfg.LogLevel = "debug"
	cfg.Development = true
	logger, err = NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	cfg.LogLevel = "loud"
	_, err = NewLogger(cfg)
	assert.Error(t, err)
}

func TestGeminiUpstreamNeedsKey(t *testing.T) {
	_, err := NewGeminiUpstream(context.Background(), config.DefaultProxyConfig(), nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
