package handlers

import (
	"encoding/json"
	"net/http"

	"commandr-api/internal/contextutil"
	"commandr-api/internal/service"
)

// Defaults applied to optional request fields.
const (
	DefaultTemperature  = 0.2
	DefaultMaxTokens    = 131072
	DefaultCitationMode = service.CitationModeAccurate
)

// GenerateHandler handles HTTP requests for plain text generation.
type GenerateHandler struct {
	service service.GenerationService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(svc service.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: svc}
}

// GenerateRequest represents the HTTP request payload for text generation.
// Pointer fields distinguish absent keys from zero values: prompt is
// required, the sampling fields default when omitted.
type GenerateRequest struct {
	Prompt      *string  `json:"prompt"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// GenerateResponse represents the HTTP response payload for text generation.
type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// ServeHTTP handles HTTP requests for text generation.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "received a generation request")

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Prompt == nil {
		respondFailure(w, ctx, "generate", &service.MissingKeyError{Key: "prompt"})
		return
	}

	svcReq := service.GenerateRequest{
		Prompt:      *req.Prompt,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	if req.Temperature != nil {
		svcReq.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		svcReq.MaxTokens = *req.MaxTokens
	}

	text, err := h.service.Generate(ctx, svcReq)
	if err != nil {
		respondFailure(w, ctx, "generate", err)
		return
	}

	logger.DebugContext(ctx, "generated response", "response_length", len(text))
	writeJSON(w, http.StatusOK, GenerateResponse{GeneratedText: text})
}
