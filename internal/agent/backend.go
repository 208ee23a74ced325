package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/artifact"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/extract"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/prompts"
)

// BackendGenerator produces the backend artifact from the refined requirement
// and the architecture decision.
type BackendGenerator struct {
	completer   ai.Completer
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewBackendGenerator creates the backend code-generation stage agent.
func NewBackendGenerator(completer ai.Completer, model string, temperature float32, logger zerolog.Logger) *BackendGenerator {
	return &BackendGenerator{
		completer:   completer,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Generate produces the backend artifact. Raw model output passes through
// extraction, validation, conditional repair, and scoring, in that order.
// Validation failures are metadata, not errors; only the model call itself
// failing produces an error outcome, carrying the static fallback backend.
func (g *BackendGenerator) Generate(ctx context.Context, refined domain.RefinedRequirement, arch domain.ArchitectureDecision) domain.Outcome[domain.Artifact] {
	system := prompts.MustRender(prompts.BackendSystem, prompts.CodeGenData{})
	user := prompts.MustRender(prompts.BackendUser, prompts.CodeGenData{
		Requirements: indentJSON(refined),
		Architecture: indentJSON(arch),
	})

	raw, err := g.completer.Complete(ctx, &ai.CompletionRequest{
		System:          system,
		Prompt:          user,
		Model:           g.model,
		Temperature:     g.temperature,
		MaxOutputTokens: constants.CodeMaxOutputTokens,
	})
	if err != nil {
		g.logger.Warn().Err(err).Msg("backend generation falling back")
		return domain.Failure(BackendName, fallbackBackendArtifact(), err)
	}

	code := extract.CodeBlock(raw, "python")
	report := artifact.ValidateBackend(code)
	if !report.Valid {
		g.logger.Debug().
			Strs("issues", report.Issues).
			Msg("backend validation issues, attempting repair")
		code = artifact.RepairBackend(code)
	}

	return domain.Success(BackendName, domain.Artifact{
		Code:         code,
		Language:     "python",
		Framework:    "FastAPI",
		Port:         constants.DefaultBackendPort,
		LineCount:    domain.CountLines(code),
		Validation:   report,
		QualityScore: artifact.ScoreBackend(code),
	})
}

// Info describes the agent for introspection.
func (g *BackendGenerator) Info() Info {
	return Info{
		Name:        BackendName,
		Model:       g.model,
		Temperature: g.temperature,
		Purpose:     "Generate a runnable FastAPI backend",
	}
}

// fallbackBackendArtifact is the static artifact substituted when backend
// generation fails. It skips validation: the fallback source is known-good.
func fallbackBackendArtifact() domain.Artifact {
	return domain.Artifact{
		Code:      fallbackBackendCode,
		Language:  "python",
		Framework: "FastAPI",
		Port:      constants.DefaultBackendPort,
		LineCount: domain.CountLines(fallbackBackendCode),
	}
}
