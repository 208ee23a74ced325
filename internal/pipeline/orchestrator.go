// Package pipeline implements the fixed six-stage workflow orchestrator.
//
// The stage graph is static and linear: Refine → Architect → GenerateBackend
// → GenerateFrontend → Review → Deploy. Every run visits every stage exactly
// once, in order, with no retries, branching, or fan-out. Each stage writes
// its designated WorkflowState field and appends one audit-trail record.
//
// Stage agents contain their own failures, so the only path that shortcuts
// the sequence is a panic escaping an agent — a programming defect, not a
// modeled failure — which Execute recovers once at its boundary, records in
// WorkflowState.Error, and returns as a partial state.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
)

// Refiner is the first stage: free text in, structured requirement out.
type Refiner interface {
	Refine(ctx context.Context, requirement string) domain.Outcome[domain.RefinedRequirement]
}

// Architect is the second stage: refined requirement in, architecture out.
type Architect interface {
	Plan(ctx context.Context, refined domain.RefinedRequirement) domain.Outcome[domain.ArchitectureDecision]
}

// BackendGenerator is the third stage.
type BackendGenerator interface {
	Generate(ctx context.Context, refined domain.RefinedRequirement, arch domain.ArchitectureDecision) domain.Outcome[domain.Artifact]
}

// FrontendGenerator is the fourth stage.
type FrontendGenerator interface {
	Generate(ctx context.Context, refined domain.RefinedRequirement, backend domain.Artifact) domain.Outcome[domain.Artifact]
}

// Reviewer is the fifth stage.
type Reviewer interface {
	Review(ctx context.Context, backendCode, frontendCode string) domain.Outcome[domain.CodeReview]
}

// Deployer is the sixth and final stage.
type Deployer interface {
	Deploy(ctx context.Context, backendCode, frontendCode, projectID string) domain.Outcome[domain.DeploymentRecord]
}

// Orchestrator owns the shared workflow state and the fixed stage order.
type Orchestrator struct {
	refiner   Refiner
	architect Architect
	backend   BackendGenerator
	frontend  FrontendGenerator
	reviewer  Reviewer
	deployer  Deployer
	logger    zerolog.Logger
}

// New creates an orchestrator over the six stage agents.
func New(refiner Refiner, architect Architect, backend BackendGenerator, frontend FrontendGenerator, reviewer Reviewer, deployer Deployer, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		refiner:   refiner,
		architect: architect,
		backend:   backend,
		frontend:  frontend,
		reviewer:  reviewer,
		deployer:  deployer,
		logger:    logger,
	}
}

// Execute runs the full pipeline for one requirement and returns the final
// workflow state. It never returns an error and never panics: a run either
// completes all six stages, or — on an escaped panic — returns the partial
// state with Error set and every downstream field still empty.
//
// The returned state's audit trail reflects exactly the stages that
// completed, in execution order.
func (o *Orchestrator) Execute(ctx context.Context, requirement string) (state *domain.WorkflowState) {
	state = domain.NewWorkflowState(requirement)
	projectID := GenerateProjectID()

	defer func() {
		if r := recover(); r != nil {
			state.Error = fmt.Sprintf("pipeline aborted: %v", r)
			o.logger.Error().
				Str("project_id", projectID).
				Interface("panic", r).
				Int("stages_run", len(state.AgentResponses)).
				Msg("stage agent panicked, returning partial state")
		}
	}()

	o.logger.Info().
		Str("project_id", projectID).
		Int("requirement_chars", len(requirement)).
		Msg("pipeline run starting")

	refined := o.refiner.Refine(ctx, requirement)
	state.Refined = &refined.Output
	state.Record(refined.Agent, refined.Status, map[string]any{
		"is_clear":    refined.Output.IsClear,
		"ambiguities": len(refined.Output.IdentifiedAmbiguities),
	})

	arch := o.architect.Plan(ctx, *state.Refined)
	state.Architecture = &arch.Output
	state.Record(arch.Agent, arch.Status, map[string]any{
		"app_type":   arch.Output.AppType,
		"complexity": arch.Output.EstimatedComplexity,
	})

	backend := o.backend.Generate(ctx, *state.Refined, *state.Architecture)
	state.Backend = &backend.Output
	state.Record(backend.Agent, backend.Status, map[string]any{
		"code_length":   len(backend.Output.Code),
		"quality_score": backend.Output.QualityScore,
	})

	frontend := o.frontend.Generate(ctx, *state.Refined, *state.Backend)
	state.Frontend = &frontend.Output
	state.Record(frontend.Agent, frontend.Status, map[string]any{
		"code_length":   len(frontend.Output.Code),
		"quality_score": frontend.Output.QualityScore,
	})

	review := o.reviewer.Review(ctx, state.Backend.Code, state.Frontend.Code)
	state.Review = &review.Output
	state.Record(review.Agent, review.Status, map[string]any{
		"overall_score":    review.Output.OverallScore,
		"production_ready": review.Output.ProductionReady,
	})

	deployment := o.deployer.Deploy(ctx, state.Backend.Code, state.Frontend.Code, projectID)
	state.Deployment = &deployment.Output
	state.Record(deployment.Agent, deployment.Status, map[string]any{
		"message":    deployment.Output.Message,
		"project_id": deployment.Output.ProjectID,
	})

	o.logger.Info().
		Str("project_id", projectID).
		Int("stages_run", len(state.AgentResponses)).
		Msg("pipeline run complete")

	return state
}
