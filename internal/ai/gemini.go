package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	apperrors "github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// GeminiClient implements Completer against the Gemini API.
type GeminiClient struct {
	client         *genai.Client
	defaultTimeout time.Duration
	logger         zerolog.Logger
}

// NewGeminiClient creates a Gemini-backed completer.
// Returns ErrMissingAPIKey when apiKey is empty.
func NewGeminiClient(ctx context.Context, apiKey string, defaultTimeout time.Duration, logger zerolog.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}
	if defaultTimeout <= 0 {
		defaultTimeout = constants.DefaultAITimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrModelInvocation, err.Error())
	}

	return &GeminiClient{
		client:         client,
		defaultTimeout: defaultTimeout,
		logger:         logger,
	}, nil
}

// Complete issues one generation call and returns the raw response text.
// Transport, quota, and timeout failures surface as ErrModelInvocation; a
// response with no text surfaces as ErrEmptyResponse.
func (c *GeminiClient) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = req.MaxOutputTokens
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("model", req.Model).
			Dur("elapsed", time.Since(start)).
			Msg("model call failed")
		return "", fmt.Errorf("%w: %s", apperrors.ErrModelInvocation, err.Error())
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: model %s", apperrors.ErrEmptyResponse, req.Model)
	}

	c.logger.Debug().
		Str("model", req.Model).
		Int("response_chars", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("model call complete")

	return text, nil
}
