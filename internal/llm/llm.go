package llm

import (
	"context"
	"errors"
)

// Client abstracts text-completion providers for report generation.
type Client interface {
	Complete(ctx context.Context, input CompletionInput) (Result, error)
}

// CompletionInput captures one completion request.
type CompletionInput struct {
	// Prompt holds the instruction text for this section.
	Prompt string
	// Corpus holds the combined source-document text, already chunked to fit
	// the provider's context.
	Corpus []string
	// Schema, when set, asks the provider for structured field values. When
	// nil, plain text is returned.
	Schema *Schema
}

// Result is either a structured field map (schema supplied) or plain text.
type Result struct {
	Fields map[string]any
	Text   string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, input CompletionInput) (Result, error) {
	_ = ctx
	_ = input
	return Result{}, ErrNotImplemented
}
