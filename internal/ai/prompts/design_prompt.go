package prompts

import (
	"fmt"
	"strings"

	"v0promptgen/internal/types"
)

// DefaultTargetTool is the design tool the generated prompt is written for.
const DefaultTargetTool = "v0.dev"

// GetDesignPrompt assembles the user prompt for a generation request and
// returns it together with the system instruction for the completion call.
//
// Clauses are appended in a fixed order (style, mood, palette, fonts, custom
// requirement) and only for non-empty fields. Category, style, mood and fonts
// are lower-cased; palette and the custom requirement are inserted verbatim.
func GetDesignPrompt(req types.GenerationRequest, targetTool string) (string, string) {
	if targetTool == "" {
		targetTool = DefaultTargetTool
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed prompt for %s to create a %s ", targetTool, strings.ToLower(req.Category))
	if req.Style != "" {
		fmt.Fprintf(&b, "with a %s style ", strings.ToLower(req.Style))
	}
	if req.Mood != "" {
		fmt.Fprintf(&b, "that conveys a %s mood ", strings.ToLower(req.Mood))
	}
	if req.Palette != "" {
		fmt.Fprintf(&b, "using the %s color palette ", req.Palette)
	}
	if req.Fonts != "" {
		fmt.Fprintf(&b, "and %s fonts ", strings.ToLower(req.Fonts))
	}
	if req.CustomRequirement != "" {
		fmt.Fprintf(&b, ". Additional requirements: %s", req.CustomRequirement)
	}
	fmt.Fprintf(&b, ". The prompt should be specific, creative, and push the capabilities of %s to its fullest.", targetTool)

	systemPrompt := fmt.Sprintf("You are an expert at creating prompts for %s, an AI-powered design tool.", targetTool)

	return b.String(), systemPrompt
}
