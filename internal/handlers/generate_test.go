package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commandr-api/internal/service"
	"commandr-api/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Suppress handler logs during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// doRequest serves a request against a handler and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decodeBody decodes a recorded JSON response into a map for field checks.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestNewGenerateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewGenerateHandler(mocks.NewMockGenerationService(ctrl))
	if handler == nil {
		t.Fatal("NewGenerateHandler() returned nil")
	}
}

func TestGenerateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       any
		mockSetup  func(*mocks.MockGenerationService)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:   "defaults applied when optional fields omitted",
			method: http.MethodPost,
			body:   map[string]any{"prompt": "Hello"},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Generate(gomock.Any(), service.GenerateRequest{
						Prompt:      "Hello",
						Temperature: 0.2,
						MaxTokens:   131072,
					}).
					Return("generated output", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"generated_text": "generated output"},
		},
		{
			name:   "explicit sampling parameters forwarded",
			method: http.MethodPost,
			body:   map[string]any{"prompt": "Hello", "temperature": 0.9, "max_tokens": 64},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Generate(gomock.Any(), service.GenerateRequest{
						Prompt:      "Hello",
						Temperature: 0.9,
						MaxTokens:   64,
					}).
					Return("short output", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"generated_text": "short output"},
		},
		{
			name:       "missing prompt",
			method:     http.MethodPost,
			body:       map[string]any{"temperature": 0.2},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Missing key in request JSON: 'prompt'"},
		},
		{
			name:   "temperature out of range",
			method: http.MethodPost,
			body:   map[string]any{"prompt": "Hi", "temperature": 1.5},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", &service.ValidationError{Message: "Temperature must be between 0.0 and 1.0"})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Temperature must be between 0.0 and 1.0"},
		},
		{
			name:   "collaborator failure",
			method: http.MethodPost,
			body:   map[string]any{"prompt": "Hi"},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", errors.New("inference server unreachable"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody: map[string]any{
				"error":   "An unexpected error occurred",
				"details": "inference server unreachable",
			},
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "not json",
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid request body"},
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockGenerationService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}

			w := doRequest(t, NewGenerateHandler(mockService), tt.method, "/generate", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantBody != nil {
				got := decodeBody(t, w)
				for key, want := range tt.wantBody {
					if got[key] != want {
						t.Errorf("body[%q] = %v, want %v", key, got[key], want)
					}
				}
			}
		})
	}
}
