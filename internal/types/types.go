package types

import "time"

// FailureReason is the only provider failure text ever shown to the caller.
const FailureReason = "Failed to generate prompt. Please try again."

// GenerationRequest carries the form selections for one prompt generation.
// Category is required; every other field may be empty.
type GenerationRequest struct {
	Category          string `json:"category" form:"category" binding:"required"`
	Style             string `json:"style" form:"style"`
	Mood              string `json:"mood" form:"mood"`
	Palette           string `json:"palette" form:"palette"` // palette name, not the swatch colors
	Fonts             string `json:"fonts" form:"fonts"`
	CustomRequirement string `json:"customRequirement" form:"customRequirement"`
}

// GenerationResult holds either the generated text or a failure reason, never both.
// The JSON shape matches what the form expects: {"message": ...} or {"error": ...}.
type GenerationResult struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(text string) GenerationResult {
	return GenerationResult{Message: text}
}

func Failure(reason string) GenerationResult {
	return GenerationResult{Error: reason}
}

// Failed reports whether the result is the failure variant.
func (r GenerationResult) Failed() bool {
	return r.Error != ""
}

// PromptRecord is the archived copy of a successful generation.
type PromptRecord struct {
	ID                string    `json:"id"`
	Category          string    `json:"category"`
	Style             string    `json:"style"`
	Mood              string    `json:"mood"`
	Palette           string    `json:"palette"`
	Fonts             string    `json:"fonts"`
	CustomRequirement string    `json:"customRequirement"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewPromptRecord copies the request fields alongside the generated text.
// ID and CreatedAt are left for the store to assign.
func NewPromptRecord(req GenerationRequest, text string) PromptRecord {
	return PromptRecord{
		Category:          req.Category,
		Style:             req.Style,
		Mood:              req.Mood,
		Palette:           req.Palette,
		Fonts:             req.Fonts,
		CustomRequirement: req.CustomRequirement,
		Text:              text,
	}
}
