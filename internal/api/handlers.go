package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"v0promptgen/internal/ai/prompts"
	"v0promptgen/internal/logger"
	"v0promptgen/internal/types"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// PromptGenerator is satisfied by *ai.PromptService.
type PromptGenerator interface {
	GeneratePromptAndStore(ctx context.Context, req types.GenerationRequest) types.GenerationResult
}

// RecordLister is satisfied by *store.DB.
type RecordLister interface {
	ListRecords(ctx context.Context, limit int) ([]types.PromptRecord, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator PromptGenerator
	history   RecordLister // nil when persistence is disabled
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator PromptGenerator, history RecordLister) *APIHandler {
	return &APIHandler{
		generator: generator,
		history:   history,
	}
}

type HistoryResponse struct {
	Records []types.PromptRecord `json:"records"`
}

// POST /prompt/generate
// Accepts JSON or form-encoded fields; category is required.
func (h *APIHandler) GeneratePrompt(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger.Infof("Received prompt generation request for category %q", req.Category)

	result := h.generator.GeneratePromptAndStore(c.Request.Context(), req)
	if result.Failed() {
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /prompt/options
func (h *APIHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, prompts.GetOptions())
}

// GET /prompt/history?limit=N
func (h *APIHandler) ListHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.history.ListRecords(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to list prompt history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load prompt history"})
		return
	}
	if records == nil {
		records = []types.PromptRecord{}
	}

	c.JSON(http.StatusOK, HistoryResponse{Records: records})
}
