package ai

import (
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel matches the model the prompt form was tuned against.
const DefaultModel = openai.GPT3Dot5Turbo

type GeneratorConfig struct {
	APIKey  string
	BaseURL string // empty means the public OpenAI endpoint
	Model   string
	Timeout time.Duration
}

// Generator is the OpenAI-backed CompletionProvider.
type Generator struct {
	client *openai.Client
	model  string
}

func NewGenerator(cfg GeneratorConfig) *Generator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	// The service also bounds each call with a context deadline; the client
	// timeout is a backstop for callers that pass a context without one.
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (g *Generator) Model() string {
	return g.model
}
