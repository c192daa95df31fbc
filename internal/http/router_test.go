package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"commandr-api/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

// okProber always reports a healthy backend.
type okProber struct{}

func (okProber) Healthy(ctx context.Context) bool { return true }

// docsStub stands in for the rendered docs page.
type docsStub struct{}

func (docsStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body>docs</body></html>"))
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return NewRouter(&Deps{
		GenerationService: mocks.NewMockGenerationService(ctrl),
		Prober:            okProber{},
		Model:             "test-model",
		Docs:              docsStub{},
	})
}

func TestNewRouter(t *testing.T) {
	if newTestRouter(t) == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "GET root serves docs",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /generate exists",
			method:     http.MethodPost,
			path:       "/generate",
			body:       "not json",
			wantStatus: http.StatusBadRequest, // invalid body, but the route exists
		},
		{
			name:       "POST /chat exists",
			method:     http.MethodPost,
			path:       "/chat",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "POST /tool exists",
			method:     http.MethodPost,
			path:       "/tool",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "POST /rag exists",
			method:     http.MethodPost,
			path:       "/rag",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /generate is not routed",
			method:     http.MethodGet,
			path:       "/generate",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reader *strings.Reader
			if tt.body != "" {
				reader = strings.NewReader(tt.body)
			} else {
				reader = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, reader)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
