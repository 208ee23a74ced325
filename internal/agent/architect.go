package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/prompts"
)

// Architect decides the application type, stack, and build order from a
// refined requirement.
type Architect struct {
	completer   ai.Completer
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewArchitect creates the architecture-decision stage agent.
func NewArchitect(completer ai.Completer, model string, temperature float32, logger zerolog.Logger) *Architect {
	return &Architect{
		completer:   completer,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Plan derives an architecture decision from the refined requirement.
// On failure the outcome carries the static two-tier web-app fallback.
func (a *Architect) Plan(ctx context.Context, refined domain.RefinedRequirement) domain.Outcome[domain.ArchitectureDecision] {
	system := prompts.MustRender(prompts.ArchitectSystem, prompts.ArchitectData{
		FormatInstructions: prompts.ArchitectureFormat,
	})
	user := prompts.MustRender(prompts.ArchitectUser, prompts.ArchitectData{
		Requirements: indentJSON(refined),
	})

	raw, err := a.completer.Complete(ctx, &ai.CompletionRequest{
		System:      system,
		Prompt:      user,
		Model:       a.model,
		Temperature: a.temperature,
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("architect stage falling back")
		return domain.Failure(ArchitectName, domain.FallbackArchitecture(), err)
	}

	decision, err := decodeJSON[domain.ArchitectureDecision](raw)
	if err != nil {
		a.logger.Warn().Err(err).Msg("architect stage output unparseable, falling back")
		return domain.Failure(ArchitectName, domain.FallbackArchitecture(), err)
	}

	return domain.Success(ArchitectName, decision)
}

// Info describes the agent for introspection.
func (a *Architect) Info() Info {
	return Info{
		Name:        ArchitectName,
		Model:       a.model,
		Temperature: a.temperature,
		Purpose:     "Decide architecture and coordinate development order",
	}
}
