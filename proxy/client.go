package proxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client talks to a running proxy
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the proxy at baseURL. A nil httpClient gets
// a default with a generous timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the proxy address the client posts to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate asks for the counter-archetype of input and returns the text
func (c *Client) Generate(ctx context.Context, input string) (string, error) {
	var out generateResponse
	if err := c.post(ctx, "/api/generate", map[string]string{"input": input}, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// AnalyzeImage posts an image and decodes the analysis profile
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*SonicData, error) {
	body := map[string]string{
		"base64Image": base64.StdEncoding.EncodeToString(image),
		"mimeType":    mimeType,
	}
	var out SonicData
	if err := c.post(ctx, "/api/analyze-architecture", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeFile reads path and analyzes it, taking the mime type from the
// extension or, failing that, from the content
func (c *Client) AnalyzeFile(ctx context.Context, path string) (*SonicData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return c.AnalyzeImage(ctx, data, DetectMimeType(path, data))
}

// DetectMimeType guesses the media type of an image file
func DetectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// responseError surfaces the server's error message, or the status when the
// body carries none
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &Error{Kind: kindForStatus(resp.StatusCode), Message: er.Error, Details: er.Details}
	}
	return &Error{
		Kind:    kindForStatus(resp.StatusCode),
		Message: fmt.Sprintf("API request failed: %d", resp.StatusCode),
		Err:     errors.New(resp.Status),
	}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindInvalidInput
	case http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	default:
		return KindUpstream
	}
}
