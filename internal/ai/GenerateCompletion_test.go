package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOpenAI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeCompletion(w http.ResponseWriter, choices ...string) {
	resp := openai.ChatCompletionResponse{ID: "chatcmpl-test", Object: "chat.completion", Model: DefaultModel}
	for i, content := range choices {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Index:        i,
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
			FinishReason: openai.FinishReasonStop,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestGenerator_Complete(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(w, "first choice", "second choice")
	})

	g := NewGenerator(GeneratorConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	text, err := g.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		MaxTokens:    300,
	})

	require.NoError(t, err)
	assert.Equal(t, "first choice", text)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "system", got.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
	assert.Equal(t, "user", got.Messages[1].Content)
}

func TestGenerator_CustomModel(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(w, "ok")
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini", Timeout: 5 * time.Second})
	_, err := g.Complete(context.Background(), CompletionRequest{UserPrompt: "u"})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, "gpt-4o-mini", g.Model())
}

func TestGenerator_ProviderError(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	_, err := g.Complete(context.Background(), CompletionRequest{UserPrompt: "u"})

	require.Error(t, err)
	var apiErr *openai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatusCode)
}

func TestGenerator_EmptyChoices(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w)
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	_, err := g.Complete(context.Background(), CompletionRequest{UserPrompt: "u"})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerator_EmptyContent(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, "")
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	_, err := g.Complete(context.Background(), CompletionRequest{UserPrompt: "u"})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerator_MalformedBody(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [`))
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: 5 * time.Second})
	_, err := g.Complete(context.Background(), CompletionRequest{UserPrompt: "u"})

	assert.Error(t, err)
}

func TestGenerator_ContextDeadline(t *testing.T) {
	srv := newFakeOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	g := NewGenerator(GeneratorConfig{APIKey: "k", BaseURL: srv.URL + "/v1", Timeout: time.Minute})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Complete(ctx, CompletionRequest{UserPrompt: "u"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
