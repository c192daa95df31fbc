package handlers

import (
	"encoding/json"
	"net/http"

	"commandr-api/internal/contextutil"
	"commandr-api/internal/inference"
	"commandr-api/internal/service"
)

// ChatHandler handles HTTP requests for conversational generation.
type ChatHandler struct {
	service service.GenerationService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc service.GenerationService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Conversation *[]inference.Message `json:"conversation"`
	Temperature  *float64             `json:"temperature"`
	MaxTokens    *int                 `json:"max_tokens"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	GeneratedText string `json:"generated_text"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "received a chat request")

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Conversation == nil {
		respondFailure(w, ctx, "chat", &service.MissingKeyError{Key: "conversation"})
		return
	}

	svcReq := service.ChatRequest{
		Conversation: *req.Conversation,
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
	}
	if req.Temperature != nil {
		svcReq.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		svcReq.MaxTokens = *req.MaxTokens
	}

	text, err := h.service.Chat(ctx, svcReq)
	if err != nil {
		respondFailure(w, ctx, "chat", err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{GeneratedText: text})
}
