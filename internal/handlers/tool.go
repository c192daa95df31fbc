package handlers

import (
	"encoding/json"
	"net/http"

	"commandr-api/internal/contextutil"
	"commandr-api/internal/inference"
	"commandr-api/internal/service"
)

// ToolHandler handles HTTP requests for tool-use generation.
type ToolHandler struct {
	service service.GenerationService
}

// NewToolHandler creates a new ToolHandler.
func NewToolHandler(svc service.GenerationService) *ToolHandler {
	return &ToolHandler{service: svc}
}

// ToolRequest represents the HTTP request payload for tool use. Tool
// requests carry no sampling parameters; the backend's defaults apply.
type ToolRequest struct {
	Conversation *[]inference.Message `json:"conversation"`
	Tools        *[]service.ToolSpec  `json:"tools"`
}

// ToolResponse represents the HTTP response payload for tool use.
type ToolResponse struct {
	ToolResponse string `json:"tool_response"`
}

// ServeHTTP handles HTTP requests for tool use.
func (h *ToolHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "received a tool request")

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Conversation == nil {
		respondFailure(w, ctx, "tool", &service.MissingKeyError{Key: "conversation"})
		return
	}
	if req.Tools == nil {
		respondFailure(w, ctx, "tool", &service.MissingKeyError{Key: "tools"})
		return
	}

	text, err := h.service.ToolUse(ctx, service.ToolRequest{
		Conversation: *req.Conversation,
		Tools:        *req.Tools,
	})
	if err != nil {
		respondFailure(w, ctx, "tool", err)
		return
	}

	writeJSON(w, http.StatusOK, ToolResponse{ToolResponse: text})
}
