package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/automoto/poetics/config"
	"google.golang.org/genai"
)

// Upstream is the generative model the endpoints forward to
type Upstream interface {
	// Analyze returns the model's JSON analysis of an architectural image
	Analyze(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error)
	// Generate returns the model's raw text answer for an archetype
	Generate(ctx context.Context, input string) (string, error)
}

// SonicData is the analysis profile the model is asked to return
type SonicData struct {
	Volume                   float64  `json:"volume"`
	Brightness               float64  `json:"brightness"`
	Complexity               float64  `json:"complexity"`
	Materials                string   `json:"materials"`
	Mood                     string   `json:"mood"`
	SuggestedKey             string   `json:"suggestedKey"`
	Tempo                    float64  `json:"tempo"`
	Genre                    string   `json:"genre"`
	DetectedFeatures         []string `json:"detectedFeatures"`
	ArchitecturalDescription string   `json:"architecturalDescription"`
}

// ParseSonic checks that text is a JSON object and returns it as sent.
// Field types are not enforced; clients decode into SonicData themselves.
func ParseSonic(text string) (json.RawMessage, error) {
	raw := bytes.TrimSpace([]byte(text))
	if !json.Valid(raw) {
		return nil, fmt.Errorf("parse analysis: invalid JSON")
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("parse analysis: expected a JSON object")
	}
	return raw, nil
}

// GeminiUpstream calls the Gemini API through the genai SDK
type GeminiUpstream struct {
	client *genai.Client
	model  string
}

// NewGeminiUpstream creates the upstream client. It fails with
// ErrMissingAPIKey when cfg carries no key.
func NewGeminiUpstream(ctx context.Context, cfg config.ProxyConfig, httpClient *http.Client) (*GeminiUpstream, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiUpstream{client: client, model: cfg.Model}, nil
}

func (g *GeminiUpstream) Analyze(ctx context.Context, image []byte, mimeType string) (json.RawMessage, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(analyzePrompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(sonicSystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](analyzeTemperature),
		MaxOutputTokens:   analyzeMaxTokens,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    sonicSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini API request failed: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return nil, ErrNoResponse
	}
	return ParseSonic(text)
}

func (g *GeminiUpstream) Generate(ctx context.Context, input string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(historianPrompt(input), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](generateTemperature),
		MaxOutputTokens: generateMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	return firstText(resp), nil
}

// firstText returns the text of the first part of the first candidate
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return ""
	}
	return content.Parts[0].Text
}
