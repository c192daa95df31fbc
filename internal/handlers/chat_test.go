package handlers

import (
	"errors"
	"net/http"
	"testing"

	"commandr-api/internal/inference"
	"commandr-api/internal/service"
	"commandr-api/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestChatHandler_ServeHTTP(t *testing.T) {
	conversation := []any{
		map[string]any{"role": "user", "content": "Hello"},
		map[string]any{"role": "assistant", "content": "Hi!"},
	}
	wantConversation := []inference.Message{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Hi!"},
	}

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
			body:   map[string]any{"conversation": conversation},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Chat(gomock.Any(), service.ChatRequest{
						Conversation: wantConversation,
						Temperature:  0.2,
						MaxTokens:    131072,
					}).
					Return("How can I help?", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"generated_text": "How can I help?"},
		},
		{
			name:   "explicit sampling parameters forwarded",
			method: http.MethodPost,
			body:   map[string]any{"conversation": conversation, "temperature": 0.5, "max_tokens": 128},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Chat(gomock.Any(), service.ChatRequest{
						Conversation: wantConversation,
						Temperature:  0.5,
						MaxTokens:    128,
					}).
					Return("Sure.", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"generated_text": "Sure."},
		},
		{
			name:       "missing conversation",
			method:     http.MethodPost,
			body:       map[string]any{"temperature": 0.2},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Missing key in request JSON: 'conversation'"},
		},
		{
			name:   "max tokens out of range",
			method: http.MethodPost,
			body:   map[string]any{"conversation": conversation, "max_tokens": 999999},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Chat(gomock.Any(), gomock.Any()).
					Return("", &service.ValidationError{Message: "Max tokens must be between 1 and 131072"})
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Max tokens must be between 1 and 131072"},
		},
		{
			name:   "collaborator failure",
			method: http.MethodPost,
			body:   map[string]any{"conversation": conversation},
			mockSetup: func(m *mocks.MockGenerationService) {
				m.EXPECT().
					Chat(gomock.Any(), gomock.Any()).
					Return("", errors.New("backend down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody: map[string]any{
				"error":   "An unexpected error occurred",
				"details": "backend down",
			},
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "{",
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

			w := doRequest(t, NewChatHandler(mockService), tt.method, "/chat", tt.body)

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
