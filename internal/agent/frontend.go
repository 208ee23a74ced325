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

// FrontendGenerator produces the single-page frontend artifact from the
// refined requirement and the generated backend.
type FrontendGenerator struct {
	completer   ai.Completer
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewFrontendGenerator creates the frontend code-generation stage agent.
func NewFrontendGenerator(completer ai.Completer, model string, temperature float32, logger zerolog.Logger) *FrontendGenerator {
	return &FrontendGenerator{
		completer:   completer,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

// Generate produces the frontend artifact through the same
// extract-validate-repair-score sequence as the backend stage. Frontend
// output is the most truncation-prone of the pipeline, so repair focuses on
// closing a cut-off document.
func (g *FrontendGenerator) Generate(ctx context.Context, refined domain.RefinedRequirement, backend domain.Artifact) domain.Outcome[domain.Artifact] {
	system := prompts.MustRender(prompts.FrontendSystem, prompts.UIData{})
	user := prompts.MustRender(prompts.FrontendUser, prompts.UIData{
		Requirements: indentJSON(refined),
		BackendInfo:  indentJSON(backend),
	})

	raw, err := g.completer.Complete(ctx, &ai.CompletionRequest{
		System:          system,
		Prompt:          user,
		Model:           g.model,
		Temperature:     g.temperature,
		MaxOutputTokens: constants.CodeMaxOutputTokens,
	})
	if err != nil {
		g.logger.Warn().Err(err).Msg("frontend generation falling back")
		return domain.Failure(FrontendName, fallbackFrontendArtifact(), err)
	}

	code := extract.EnsureHTMLPrelude(extract.CodeBlock(raw, "html"))
	report := artifact.ValidateFrontend(code)
	if !report.Valid {
		g.logger.Debug().
			Strs("issues", report.Issues).
			Msg("frontend validation issues, attempting repair")
		code = artifact.RepairFrontend(code)
	}

	return domain.Success(FrontendName, domain.Artifact{
		Code:         code,
		Language:     "html",
		Framework:    "HTML/CSS/JS",
		LineCount:    domain.CountLines(code),
		Validation:   report,
		QualityScore: artifact.ScoreFrontend(code),
	})
}

// Info describes the agent for introspection.
func (g *FrontendGenerator) Info() Info {
	return Info{
		Name:        FrontendName,
		Model:       g.model,
		Temperature: g.temperature,
		Purpose:     "Generate a complete single-page frontend",
	}
}

// fallbackFrontendArtifact is the static artifact substituted when frontend
// generation fails.
func fallbackFrontendArtifact() domain.Artifact {
	return domain.Artifact{
		Code:      fallbackFrontendCode,
		Language:  "html",
		Framework: "HTML/CSS/JS",
		LineCount: domain.CountLines(fallbackFrontendCode),
	}
}
