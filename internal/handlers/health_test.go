package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// fakeProber is a Prober stub with a fixed answer.
type fakeProber struct {
	healthy bool
}

func (f *fakeProber) Healthy(ctx context.Context) bool {
	return f.healthy
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		healthy    bool
		wantStatus int
		wantState  string
	}{
		{
			name:       "healthy backend",
			method:     http.MethodGet,
			healthy:    true,
			wantStatus: http.StatusOK,
			wantState:  "healthy",
		},
		{
			name:       "unreachable backend",
			method:     http.MethodGet,
			healthy:    false,
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			healthy:    true,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(&fakeProber{healthy: tt.healthy}, "test-model")

			w := doRequest(t, handler, tt.method, "/api/health", nil)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantState == "" {
				return
			}

			body := decodeBody(t, w)
			if body["status"] != tt.wantState {
				t.Errorf("status field = %v, want %v", body["status"], tt.wantState)
			}
			if body["model"] != "test-model" {
				t.Errorf("model field = %v, want test-model", body["model"])
			}
			checks, ok := body["checks"].(map[string]any)
			if !ok {
				t.Fatalf("checks field missing: %v", body)
			}
			wantCheck := "ok"
			if !tt.healthy {
				wantCheck = "error"
			}
			if checks["inference_server"] != wantCheck {
				t.Errorf("inference_server check = %v, want %v", checks["inference_server"], wantCheck)
			}
		})
	}
}

func TestDocsHandler_ServeHTTP(t *testing.T) {
	handler, err := NewDocsHandler("test-model")
	if err != nil {
		t.Fatalf("NewDocsHandler() error = %v", err)
	}

	w := doRequest(t, handler, http.MethodGet, "/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	page := w.Body.String()
	for _, want := range []string{"test-model", "/generate", "/chat", "/tool", "/rag"} {
		if !strings.Contains(page, want) {
			t.Errorf("docs page missing %q", want)
		}
	}
}
