// Package proxy implements the analysis proxy: two endpoints that validate a
// request, forward it to the generative model, and relay the answer.
package proxy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidImage     = "Invalid image data"
	msgInvalidMime      = "Invalid mime type"
	msgInvalidInput     = "Invalid input"
	msgNoAPIKey         = "API key not configured"
	msgAnalysisFailed   = "Analysis failed. Please try again."
	msgStaticNoise      = "static noise. connection interrupted."

	// SilenceText replaces an empty model answer
	SilenceText = "silence returned."
)

const corsAllowHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"

type analyzeRequest struct {
	Base64Image json.RawMessage `json:"base64Image"`
	MimeType    json.RawMessage `json:"mimeType"`
}

type generateRequest struct {
	Input json.RawMessage `json:"input"`
}

type generateResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler serves both endpoints. A nil upstream means no credential was
// configured and every valid request fails with a configuration error.
type Handler struct {
	upstream Upstream
	logger   *zap.Logger
	maxBody  int64
	timeout  time.Duration
}

func NewHandler(upstream Upstream, logger *zap.Logger, maxBody int64, timeout time.Duration) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		upstream: upstream,
		logger:   logger,
		maxBody:  maxBody,
		timeout:  timeout,
	}
}

// Analyze handles POST /api/analyze-architecture
func (h *Handler) Analyze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.preflight(w, r) {
			return
		}

		var req analyzeRequest
		decodeErr := h.decode(w, r, &req)
		b64, ok := stringField(req.Base64Image)
		if decodeErr != nil || !ok {
			writeError(w, invalidInput(msgInvalidImage))
			return
		}
		image, err := decodeBase64(b64)
		if err != nil {
			writeError(w, invalidInput(msgInvalidImage))
			return
		}
		mimeType, ok := stringField(req.MimeType)
		if !ok {
			writeError(w, invalidInput(msgInvalidMime))
			return
		}
		if h.upstream == nil {
			writeError(w, &Error{Kind: KindConfiguration, Message: msgNoAPIKey, Err: ErrMissingAPIKey})
			return
		}

		ctx, cancel := h.upstreamContext(r.Context())
		defer cancel()

		sonic, err := h.upstream.Analyze(ctx, image, mimeType)
		if err != nil {
			h.logger.Error("Error analyzing architecture", zap.Error(err), zap.String("mime_type", mimeType))
			writeError(w, &Error{Kind: KindUpstream, Message: msgAnalysisFailed, Details: err.Error(), Err: err})
			return
		}
		writeJSON(w, http.StatusOK, sonic)
	}
}

// Generate handles POST /api/generate
func (h *Handler) Generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.preflight(w, r) {
			return
		}

		var req generateRequest
		decodeErr := h.decode(w, r, &req)
		input, ok := stringField(req.Input)
		if decodeErr != nil || !ok {
			writeError(w, invalidInput(msgInvalidInput))
			return
		}
		if h.upstream == nil {
			writeError(w, &Error{Kind: KindConfiguration, Message: msgNoAPIKey, Err: ErrMissingAPIKey})
			return
		}

		ctx, cancel := h.upstreamContext(r.Context())
		defer cancel()

		text, err := h.upstream.Generate(ctx, input)
		if err != nil {
			h.logger.Error("Error generating poetics", zap.Error(err))
			writeError(w, &Error{Kind: KindUpstream, Message: msgStaticNoise, Err: err})
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{Text: normalizeText(text)})
	}
}

// Health reports liveness
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// preflight writes the CORS headers and answers anything that is not a POST.
// It reports whether the handler should go on.
func (h *Handler) preflight(w http.ResponseWriter, r *http.Request) bool {
	header := w.Header()
	header.Set("Access-Control-Allow-Credentials", "true")
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET,OPTIONS,POST")
	header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return false
	case http.MethodPost:
		return true
	default:
		writeError(w, &Error{Kind: KindMethodNotAllowed, Message: msgMethodNotAllowed})
		return false
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Debug("Rejected request body", zap.Error(err))
		return err
	}
	return nil
}

func (h *Handler) upstreamContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.timeout)
}

// stringField reports the value of a JSON string field and whether it is a
// non-empty string
func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

func normalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return SilenceText
	}
	return text
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single place a failure becomes a status and body
func writeError(w http.ResponseWriter, err error) {
	var pe *Error
	if !errors.As(err, &pe) {
		pe = &Error{Kind: KindUpstream, Message: err.Error()}
	}
	writeJSON(w, pe.Kind.Status(), errorResponse{Error: pe.Message, Details: pe.Details})
}
