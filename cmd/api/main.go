package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"commandr-api/internal/config"
	"commandr-api/internal/handlers"
	"commandr-api/internal/http"
	"commandr-api/internal/inference"
	"commandr-api/internal/service"
)

func main() {
	// Load configuration first (needed for flag defaults and log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// CLI flags override the environment. Short aliases mirror the long
	// forms.
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port number for the server")
	flag.IntVar(&cfg.Port, "p", cfg.Port, "Port number for the server (shorthand)")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "Model name")
	flag.StringVar(&cfg.Model, "m", cfg.Model, "Model name (shorthand)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&cfg.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.Parse()

	if cfg.Debug {
		cfg.LogLevel = slog.LevelDebug
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Load the model into the inference server before accepting traffic
	ctx := context.Background()
	loader := inference.NewLoader(cfg.InferenceBaseURL)
	slog.Info("Loading model", "model", cfg.Model, "inference_base_url", cfg.InferenceBaseURL)
	client, tokenizer, err := loader.Load(ctx, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to load model %q: %v", cfg.Model, err)
	}
	slog.Info("Model loaded", "model", cfg.Model)

	// Create the generation service
	generationService := service.NewGenerationService(client, tokenizer)

	// Pre-render the API reference page
	docsHandler, err := handlers.NewDocsHandler(cfg.Model)
	if err != nil {
		log.Fatalf("Failed to render API docs: %v", err)
	}

	// Create router with dependencies
	deps := &http.Deps{
		GenerationService: generationService,
		Prober:            client,
		Model:             cfg.Model,
		Docs:              docsHandler,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + strconv.Itoa(cfg.Port)
	slog.Info("Starting API server", "addr", addr, "model", cfg.Model)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
