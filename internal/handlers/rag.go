package handlers

import (
	"encoding/json"
	"net/http"

	"commandr-api/internal/contextutil"
	"commandr-api/internal/inference"
	"commandr-api/internal/service"
)

// RagHandler handles HTTP requests for grounded (retrieval-augmented)
// generation.
type RagHandler struct {
	service service.GenerationService
}

// NewRagHandler creates a new RagHandler.
func NewRagHandler(svc service.GenerationService) *RagHandler {
	return &RagHandler{service: svc}
}

// RagRequest represents the HTTP request payload for grounded generation.
// Like tool requests, it carries no sampling parameters.
type RagRequest struct {
	Conversation *[]inference.Message  `json:"conversation"`
	Documents    *[]inference.Document `json:"documents"`
	CitationMode *string               `json:"citation_mode"`
}

// RagResponse represents the HTTP response payload for grounded generation.
type RagResponse struct {
	RagResponse string `json:"rag_response"`
}

// ServeHTTP handles HTTP requests for grounded generation.
func (h *RagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "received a RAG request")

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Conversation == nil {
		respondFailure(w, ctx, "rag", &service.MissingKeyError{Key: "conversation"})
		return
	}
	if req.Documents == nil {
		respondFailure(w, ctx, "rag", &service.MissingKeyError{Key: "documents"})
		return
	}

	svcReq := service.RagRequest{
		Conversation: *req.Conversation,
		Documents:    *req.Documents,
		CitationMode: DefaultCitationMode,
	}
	if req.CitationMode != nil {
		svcReq.CitationMode = *req.CitationMode
	}

	text, err := h.service.Grounded(ctx, svcReq)
	if err != nil {
		respondFailure(w, ctx, "rag", err)
		return
	}

	writeJSON(w, http.StatusOK, RagResponse{RagResponse: text})
}
