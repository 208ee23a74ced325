package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/prompts"
)

// Refiner clarifies a free-text requirement into a structured specification.
type Refiner struct {
	completer   ai.Completer
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewRefiner creates the requirement-refinement stage agent.
func NewRefiner(completer ai.Completer, model string, temperature float32, logger zerolog.Logger) *Refiner {
	return &Refiner{
		completer:   completer,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Refine analyzes the raw requirement and returns a structured refinement.
// On any model or parse failure the outcome carries the static fallback: the
// requirement passed through as already clear.
func (r *Refiner) Refine(ctx context.Context, requirement string) domain.Outcome[domain.RefinedRequirement] {
	system := prompts.MustRender(prompts.RefineSystem, prompts.RefineData{
		FormatInstructions: prompts.RefinementFormat,
	})
	user := prompts.MustRender(prompts.RefineUser, prompts.RefineData{
		Requirement: requirement,
	})

	raw, err := r.completer.Complete(ctx, &ai.CompletionRequest{
		System:      system,
		Prompt:      user,
		Model:       r.model,
		Temperature: r.temperature,
	})
	if err != nil {
		r.logger.Warn().Err(err).Msg("refine stage falling back")
		return domain.Failure(RefinerName, domain.FallbackRefinement(requirement), err)
	}

	refined, err := decodeJSON[domain.RefinedRequirement](raw)
	if err != nil {
		r.logger.Warn().Err(err).Msg("refine stage output unparseable, falling back")
		return domain.Failure(RefinerName, domain.FallbackRefinement(requirement), err)
	}

	return domain.Success(RefinerName, refined)
}

// Info describes the agent for introspection.
func (r *Refiner) Info() Info {
	return Info{
		Name:        RefinerName,
		Model:       r.model,
		Temperature: r.temperature,
		Purpose:     "Refine and clarify user requirements",
	}
}
