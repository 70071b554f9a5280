package proxy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/automoto/poetics/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiRequest is the part of a generateContent body the upstream sets
type geminiRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text       string `json:"text"`
			InlineData *struct {
				Data     string `json:"data"`
				MIMEType string `json:"mimeType"`
			} `json:"inlineData"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig struct {
		Temperature      float64 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
		ResponseMIMEType string  `json:"responseMimeType"`
		ResponseSchema   *struct {
			Required []string `json:"required"`
		} `json:"responseSchema"`
	} `json:"generationConfig"`
}

type fakeGemini struct {
	mu     sync.Mutex
	path   string
	req    geminiRequest
	status int
	text   string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.path = r.URL.Path
	_ = json.Unmarshal(body, &f.req)
	status, text := f.status, f.text
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
		return
	}
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func newTestUpstream(t *testing.T, fake *fakeGemini) *GeminiUpstream {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := config.DefaultProxyConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	up, err := NewGeminiUpstream(context.Background(), cfg, srv.Client())
	require.NoError(t, err)
	return up
}

func TestGeminiAnalyzeRequest(t *testing.T) {
	fake := &fakeGemini{text: validSonic}
	up := newTestUpstream(t, fake)

	raw, err := up.Analyze(context.Background(), []byte("hi"), "image/png")
	require.NoError(t, err)
	assert.JSONEq(t, validSonic, string(raw))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.True(t, strings.HasSuffix(fake.path, "/models/gemini-2.0-flash-exp:generateContent"), fake.path)

	gc := fake.req.GenerationConfig
	assert.InDelta(t, 0.4, gc.Temperature, 1e-6)
	assert.Equal(t, 1024, gc.MaxOutputTokens)
	assert.Equal(t, "application/json", gc.ResponseMIMEType)
	require.NotNil(t, gc.ResponseSchema)
	assert.ElementsMatch(t, sonicFields, gc.ResponseSchema.Required)
	assert.Len(t, gc.ResponseSchema.Required, 10)

	require.NotNil(t, fake.req.SystemInstruction)
	require.NotEmpty(t, fake.req.SystemInstruction.Parts)
	assert.Equal(t, sonicSystemInstruction, fake.req.SystemInstruction.Parts[0].Text)

	require.Len(t, fake.req.Contents, 1)
	parts := fake.req.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "aGk=", parts[0].InlineData.Data)
	assert.Equal(t, "image/png", parts[0].InlineData.MIMEType)
	assert.Equal(t, analyzePrompt, parts[1].Text)
}

func TestGeminiGenerateRequest(t *testing.T) {
	fake := &fakeGemini{text: "  The chair became a manifesto.  "}
	up := newTestUpstream(t, fake)

	text, err := up.Generate(context.Background(), "chair")
	require.NoError(t, err)
	assert.Equal(t, "  The chair became a manifesto.  ", text, "trimming is the handler's job")

	fake.mu.Lock()
	defer fake.mu.Unlock()
	gc := fake.req.GenerationConfig
	assert.InDelta(t, 0.3, gc.Temperature, 1e-6)
	assert.Equal(t, 200, gc.MaxOutputTokens)
	assert.Empty(t, gc.ResponseMIMEType)
	assert.Nil(t, gc.ResponseSchema)
	assert.Nil(t, fake.req.SystemInstruction)

	require.Len(t, fake.req.Contents, 1)
	require.NotEmpty(t, fake.req.Contents[0].Parts)
	assert.Equal(t, historianPrompt("chair"), fake.req.Contents[0].Parts[0].Text)
}

func TestGeminiEmptyAnswer(t *testing.T) {
	up := newTestUpstream(t, &fakeGemini{text: ""})

	_, err := up.Analyze(context.Background(), []byte("hi"), "image/png")
	assert.ErrorIs(t, err, ErrNoResponse)

	text, err := up.Generate(context.Background(), "lamp")
	require.NoError(t, err)
	assert.Empty(t, text, "an empty answer becomes silence in the handler")
}

func TestGeminiServerError(t *testing.T) {
	up := newTestUpstream(t, &fakeGemini{status: http.StatusInternalServerError})

	_, err := up.Analyze(context.Background(), []byte("hi"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gemini API request failed")
	assert.NotErrorIs(t, err, ErrNoResponse)

	_, err = up.Generate(context.Background(), "clock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API request failed")
}
