package ai

import (
	"context"

	"v0promptgen/internal/types"
)

// CompletionRequest is what the service hands to a completion provider.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// CompletionProvider turns a prompt into generated text.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// RecordStore archives successful generations.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec types.PromptRecord) error
}
