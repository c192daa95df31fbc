package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generation_service.go -package=mocks -mock_names=GenerationService=MockGenerationService commandr-api/internal/service GenerationService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks commandr-api/internal/service Generator,Templater

import (
	"context"
	"log/slog"

	"commandr-api/internal/inference"
)

// Generator produces text from a fully rendered prompt. A nil options
// pointer leaves sampling parameters to the backend's defaults.
// This interface is defined from the service layer's perspective
// (consumer-first).
type Generator interface {
	Generate(ctx context.Context, prompt string, opts *inference.GenerateOptions) (string, error)
}

// Templater renders structured conversations into single prompt strings.
type Templater interface {
	ApplyChatTemplate(conversation []inference.Message) (string, error)
	ApplyToolUseTemplate(conversation []inference.Message, tools []inference.Tool) (string, error)
	ApplyGroundedGenerationTemplate(conversation []inference.Message, documents []inference.Document, citationMode string) (string, error)
}

// GenerateRequest is a plain-prompt generation request. Defaults have
// already been applied by the HTTP layer.
type GenerateRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// ChatRequest is a conversational generation request.
type ChatRequest struct {
	Conversation []inference.Message
	Temperature  float64
	MaxTokens    int
}

// ToolRequest is a tool-use generation request.
type ToolRequest struct {
	Conversation []inference.Message
	Tools        []ToolSpec
}

// RagRequest is a grounded (retrieval-augmented) generation request.
type RagRequest struct {
	Conversation []inference.Message
	Documents    []inference.Document
	CitationMode string
}

// GenerationService validates requests, renders prompts and dispatches them
// to the generation backend.
type GenerationService interface {
	// Generate produces text from a raw prompt.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Chat produces the next assistant turn for a conversation.
	Chat(ctx context.Context, req ChatRequest) (string, error)
	// ToolUse produces a tool-use plan for a conversation and tool set.
	ToolUse(ctx context.Context, req ToolRequest) (string, error)
	// Grounded produces a document-grounded response for a conversation.
	Grounded(ctx context.Context, req RagRequest) (string, error)
}

// generationService implements GenerationService.
type generationService struct {
	generator Generator
	templater Templater
	logger    *slog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(generator Generator, templater Templater) GenerationService {
	return &generationService{
		generator: generator,
		templater: templater,
		logger:    slog.Default(),
	}
}

// Generate validates sampling parameters and generates from the prompt
// as-is.
func (s *generationService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if err := ValidateTemperature(req.Temperature); err != nil {
		return "", err
	}
	if err := ValidateMaxTokens(req.MaxTokens); err != nil {
		return "", err
	}

	text, err := s.generator.Generate(ctx, req.Prompt, &inference.GenerateOptions{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed", "error", err)
		return "", WrapError(err, "failed to generate text")
	}

	s.logger.InfoContext(ctx, "generation request processed", "prompt_length", len(req.Prompt), "response_length", len(text))
	return text, nil
}

// Chat validates sampling parameters, renders the conversation through the
// chat template and generates the next turn.
func (s *generationService) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if err := ValidateTemperature(req.Temperature); err != nil {
		return "", err
	}
	if err := ValidateMaxTokens(req.MaxTokens); err != nil {
		return "", err
	}

	prompt, err := s.templater.ApplyChatTemplate(req.Conversation)
	if err != nil {
		return "", WrapError(err, "failed to render chat template")
	}

	text, err := s.generator.Generate(ctx, prompt, &inference.GenerateOptions{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "chat generation failed", "error", err)
		return "", WrapError(err, "failed to generate chat response")
	}

	s.logger.InfoContext(ctx, "chat request processed", "turns", len(req.Conversation), "response_length", len(text))
	return text, nil
}

// ToolUse validates the tool set, renders the tool-use template and
// generates. Sampling parameters are not part of tool requests; the
// backend's defaults apply.
func (s *generationService) ToolUse(ctx context.Context, req ToolRequest) (string, error) {
	if err := ValidateTools(req.Tools); err != nil {
		return "", err
	}

	tools := make([]inference.Tool, 0, len(req.Tools))
	for _, spec := range req.Tools {
		tools = append(tools, spec.toInference())
	}

	prompt, err := s.templater.ApplyToolUseTemplate(req.Conversation, tools)
	if err != nil {
		return "", WrapError(err, "failed to render tool use template")
	}

	text, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "tool generation failed", "error", err)
		return "", WrapError(err, "failed to generate tool response")
	}

	s.logger.InfoContext(ctx, "tool request processed", "turns", len(req.Conversation), "tools", len(req.Tools), "response_length", len(text))
	return text, nil
}

// Grounded validates the citation mode, renders the grounded-generation
// template and generates. As with ToolUse, sampling parameters are left to
// the backend.
func (s *generationService) Grounded(ctx context.Context, req RagRequest) (string, error) {
	if err := ValidateCitationMode(req.CitationMode); err != nil {
		return "", err
	}

	prompt, err := s.templater.ApplyGroundedGenerationTemplate(req.Conversation, req.Documents, req.CitationMode)
	if err != nil {
		return "", WrapError(err, "failed to render grounded generation template")
	}

	text, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "rag generation failed", "error", err)
		return "", WrapError(err, "failed to generate grounded response")
	}

	s.logger.InfoContext(ctx, "rag request processed", "turns", len(req.Conversation), "documents", len(req.Documents), "response_length", len(text))
	return text, nil
}
