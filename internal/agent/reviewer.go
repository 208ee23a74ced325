package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/prompts"
)

// Reviewer assesses the quality of both generated artifacts.
type Reviewer struct {
	completer   ai.Completer
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewReviewer creates the code-review stage agent.
func NewReviewer(completer ai.Completer, model string, temperature float32, logger zerolog.Logger) *Reviewer {
	return &Reviewer{
		completer:   completer,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Review scores both artifacts. Sources are truncated before prompting to
// stay inside token limits; the review is advisory and its failure degrades
// to the neutral fallback review.
func (r *Reviewer) Review(ctx context.Context, backendCode, frontendCode string) domain.Outcome[domain.CodeReview] {
	system := prompts.MustRender(prompts.ReviewSystem, prompts.ReviewData{
		FormatInstructions: prompts.ReviewFormat,
	})
	user := prompts.MustRender(prompts.ReviewUser, prompts.ReviewData{
		BackendSnippet:  truncate(backendCode, constants.ReviewSnippetLimit),
		FrontendSnippet: truncate(frontendCode, constants.ReviewSnippetLimit),
	})

	raw, err := r.completer.Complete(ctx, &ai.CompletionRequest{
		System:      system,
		Prompt:      user,
		Model:       r.model,
		Temperature: r.temperature,
	})
	if err != nil {
		r.logger.Warn().Err(err).Msg("review stage falling back")
		return domain.Failure(ReviewerName, domain.FallbackReview(), err)
	}

	review, err := decodeJSON[domain.CodeReview](raw)
	if err != nil {
		r.logger.Warn().Err(err).Msg("review stage output unparseable, falling back")
		return domain.Failure(ReviewerName, domain.FallbackReview(), err)
	}

	return domain.Success(ReviewerName, review)
}

// Info describes the agent for introspection.
func (r *Reviewer) Info() Info {
	return Info{
		Name:        ReviewerName,
		Model:       r.model,
		Temperature: r.temperature,
		Purpose:     "Review generated code quality",
	}
}

// truncate caps s at limit characters, marking the cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
