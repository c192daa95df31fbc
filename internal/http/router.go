package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"commandr-api/internal/handlers"
	"commandr-api/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	GenerationService service.GenerationService
	Prober            handlers.Prober
	Model             string
	Docs              http.Handler
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	generateHandler := handlers.NewGenerateHandler(deps.GenerationService)
	chatHandler := handlers.NewChatHandler(deps.GenerationService)
	toolHandler := handlers.NewToolHandler(deps.GenerationService)
	ragHandler := handlers.NewRagHandler(deps.GenerationService)

	// Register generation endpoints
	r.Method(http.MethodPost, "/generate", generateHandler)
	r.Method(http.MethodPost, "/chat", chatHandler)
	r.Method(http.MethodPost, "/tool", toolHandler)
	r.Method(http.MethodPost, "/rag", ragHandler)

	if deps.Prober != nil {
		healthHandler := handlers.NewHealthHandler(deps.Prober, deps.Model)
		r.Method(http.MethodGet, "/api/health", healthHandler)
	}

	// Serve the API reference at root
	if deps.Docs != nil {
		r.Get("/", deps.Docs.ServeHTTP)
	}

	return r
}
