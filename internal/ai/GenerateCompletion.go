package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"v0promptgen/internal/logger"
)

// ErrEmptyCompletion means the provider answered but produced no usable text.
var ErrEmptyCompletion = errors.New("openai returned empty response")

// Complete sends a single chat completion and returns the first choice's text.
// It never retries.
func (g *Generator) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
			},
			MaxTokens: req.MaxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warnf("OpenAI usage for empty completion: %+v", resp.Usage)
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
