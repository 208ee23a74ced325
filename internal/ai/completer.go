// Package ai provides the generative model caller for the POC builder.
//
// Stage agents depend only on the Completer interface; the Gemini-backed
// implementation lives in gemini.go. Failures are reported as wrapped
// sentinel errors from internal/errors so callers can categorize them with
// errors.Is().
package ai

import (
	"context"
	"time"
)

// CompletionRequest contains the parameters for one generative model call.
type CompletionRequest struct {
	// System is the system instruction framing the model's role.
	System string `json:"system"`

	// Prompt is the user-turn content.
	Prompt string `json:"prompt"`

	// Model names the model to use.
	Model string `json:"model"`

	// Temperature is the sampling temperature.
	Temperature float32 `json:"temperature"`

	// MaxOutputTokens bounds the response length. Zero means provider default.
	MaxOutputTokens int32 `json:"max_output_tokens,omitempty"`

	// Timeout is the maximum duration for this call. Zero means the
	// client's configured default.
	Timeout time.Duration `json:"timeout,omitempty"`
}

// Completer issues one call to an external generative model and returns the
// raw response text. The text may or may not match the requested shape;
// recovering a clean payload from it is the caller's concern.
type Completer interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
