package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"v0promptgen/internal/ai/prompts"
	"v0promptgen/internal/logger"
	"v0promptgen/internal/types"
	"v0promptgen/internal/utils"
)

const (
	DefaultMaxTokens         = 300
	DefaultCompletionTimeout = 30 * time.Second
	DefaultPersistTimeout    = 5 * time.Second
)

type ServiceConfig struct {
	TargetTool        string
	MaxTokens         int
	CompletionTimeout time.Duration
	PersistTimeout    time.Duration
}

// PromptService builds the design prompt, asks the provider to expand it and
// archives the outcome. Calls share no mutable state apart from the
// bookkeeping for background writes.
type PromptService struct {
	provider CompletionProvider
	store    RecordStore // nil disables persistence
	cfg      ServiceConfig

	mu      sync.Mutex // guards closed and pending.Add
	closed  bool
	pending sync.WaitGroup
}

func NewPromptService(provider CompletionProvider, store RecordStore, cfg ServiceConfig) *PromptService {
	if cfg.TargetTool == "" {
		cfg.TargetTool = prompts.DefaultTargetTool
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = DefaultCompletionTimeout
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultPersistTimeout
	}
	return &PromptService{
		provider: provider,
		store:    store,
		cfg:      cfg,
	}
}

// GeneratePromptAndStore runs one generation. Provider failures collapse into
// the generic failure reason; the cause is only logged. Persistence happens in
// the background after a successful completion and never affects the result.
func (s *PromptService) GeneratePromptAndStore(ctx context.Context, req types.GenerationRequest) types.GenerationResult {
	if req.Category == "" {
		logger.Warnf("Generation request without category; building prompt with an empty category")
	}

	userPrompt, systemPrompt := prompts.GetDesignPrompt(req, s.cfg.TargetTool)
	logger.Debugf("Built prompt for %s: %s", s.cfg.TargetTool, userPrompt)

	text, err := s.complete(ctx, CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    s.cfg.MaxTokens,
	})
	if err != nil {
		logger.Errorf("Prompt generation failed (%s): %v", utils.Describe(err), err)
		return types.Failure(types.FailureReason)
	}

	s.persist(ctx, types.NewPromptRecord(req, text))

	return types.Success(text)
}

// Wait blocks until every background write started so far has finished.
func (s *PromptService) Wait() {
	s.pending.Wait()
}

// Close stops new background writes and waits for the ones in flight. After
// Close, generations still succeed but their records are dropped, so the
// store can be closed safely once Close returns.
func (s *PromptService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.pending.Wait()
}

func (s *PromptService) complete(ctx context.Context, req CompletionRequest) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.CompletionTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completion provider panicked: %v", r)
		}
	}()

	return s.provider.Complete(ctx, req)
}

func (s *PromptService) persist(ctx context.Context, rec types.PromptRecord) {
	if s.store == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logger.Warnf("Service is shutting down; dropping prompt record (category %q)", rec.Category)
		return
	}
	s.pending.Add(1)
	s.mu.Unlock()

	// Detached so the write survives the request finishing first.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PersistTimeout)

	go func() {
		defer s.pending.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("Record store panicked while saving prompt record: %v", r)
			}
		}()

		if err := s.store.SaveRecord(ctx, rec); err != nil {
			logger.Warnf("Failed to persist prompt record (category %q): %v", rec.Category, err)
			return
		}
		logger.Debugf("Persisted prompt record for category %q", rec.Category)
	}()
}
