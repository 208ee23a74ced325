package pipeline

import (
	"context"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/agent"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
)

// Stub stages record invocation and return canned outcomes.

type stubRefiner struct {
	outcome domain.Outcome[domain.RefinedRequirement]
	called  bool
}

func (s *stubRefiner) Refine(_ context.Context, _ string) domain.Outcome[domain.RefinedRequirement] {
	s.called = true
	return s.outcome
}

type stubArchitect struct {
	outcome domain.Outcome[domain.ArchitectureDecision]
	called  bool
}

func (s *stubArchitect) Plan(_ context.Context, _ domain.RefinedRequirement) domain.Outcome[domain.ArchitectureDecision] {
	s.called = true
	return s.outcome
}

type stubBackend struct {
	outcome domain.Outcome[domain.Artifact]
	called  bool
}

func (s *stubBackend) Generate(_ context.Context, _ domain.RefinedRequirement, _ domain.ArchitectureDecision) domain.Outcome[domain.Artifact] {
	s.called = true
	return s.outcome
}

type stubFrontend struct {
	outcome domain.Outcome[domain.Artifact]
	called  bool
	backend domain.Artifact
}

func (s *stubFrontend) Generate(_ context.Context, _ domain.RefinedRequirement, backend domain.Artifact) domain.Outcome[domain.Artifact] {
	s.called = true
	s.backend = backend
	return s.outcome
}

type stubReviewer struct {
	outcome domain.Outcome[domain.CodeReview]
	called  bool
}

func (s *stubReviewer) Review(_ context.Context, _, _ string) domain.Outcome[domain.CodeReview] {
	s.called = true
	return s.outcome
}

type stubDeployer struct {
	outcome   domain.Outcome[domain.DeploymentRecord]
	called    bool
	projectID string
}

func (s *stubDeployer) Deploy(_ context.Context, _, _, projectID string) domain.Outcome[domain.DeploymentRecord] {
	s.called = true
	s.projectID = projectID
	return s.outcome
}

type panickingBackend struct{}

func (panickingBackend) Generate(_ context.Context, _ domain.RefinedRequirement, _ domain.ArchitectureDecision) domain.Outcome[domain.Artifact] {
	panic("nil map write")
}

func happyStages() (*stubRefiner, *stubArchitect, *stubBackend, *stubFrontend, *stubReviewer, *stubDeployer) {
	return &stubRefiner{outcome: domain.Success(agent.RefinerName, domain.FallbackRefinement("x"))},
		&stubArchitect{outcome: domain.Success(agent.ArchitectName, domain.FallbackArchitecture())},
		&stubBackend{outcome: domain.Success(agent.BackendName, domain.Artifact{Code: "backend", QualityScore: 70})},
		&stubFrontend{outcome: domain.Success(agent.FrontendName, domain.Artifact{Code: "frontend", QualityScore: 60})},
		&stubReviewer{outcome: domain.Success(agent.ReviewerName, domain.FallbackReview())},
		&stubDeployer{outcome: domain.Success(agent.DeployerName, domain.DeploymentRecord{PID: 1, Message: "ok"})}
}

func TestOrchestrator_ExecuteRunsAllStagesInOrder(t *testing.T) {
	t.Parallel()

	refiner, architect, backend, frontend, reviewer, deployer := happyStages()
	orch := New(refiner, architect, backend, frontend, reviewer, deployer, zerolog.Nop())

	state := orch.Execute(context.Background(), "build a todo app")

	require.NotNil(t, state)
	assert.False(t, state.Failed())
	assert.Equal(t, "build a todo app", state.Requirement)

	for _, called := range []bool{refiner.called, architect.called, backend.called, frontend.called, reviewer.called, deployer.called} {
		assert.True(t, called)
	}

	require.Len(t, state.AgentResponses, 6)
	order := []string{
		agent.RefinerName,
		agent.ArchitectName,
		agent.BackendName,
		agent.FrontendName,
		agent.ReviewerName,
		agent.DeployerName,
	}
	for i, name := range order {
		assert.Equal(t, name, state.AgentResponses[i].Agent)
	}

	require.NotNil(t, state.Refined)
	require.NotNil(t, state.Architecture)
	require.NotNil(t, state.Backend)
	require.NotNil(t, state.Frontend)
	require.NotNil(t, state.Review)
	require.NotNil(t, state.Deployment)
	assert.Equal(t, "backend", frontend.backend.Code)
}

func TestOrchestrator_FailedStageDoesNotStopPipeline(t *testing.T) {
	t.Parallel()

	refiner, architect, backend, frontend, reviewer, deployer := happyStages()
	backend.outcome = domain.Failure(agent.BackendName, domain.Artifact{Code: "fallback"}, assertionError("model down"))

	orch := New(refiner, architect, backend, frontend, reviewer, deployer, zerolog.Nop())
	state := orch.Execute(context.Background(), "x")

	assert.False(t, state.Failed())
	require.Len(t, state.AgentResponses, 6)
	assert.Equal(t, domain.StatusError, state.AgentResponses[2].Status)
	assert.Equal(t, "fallback", state.Backend.Code)
	// Downstream stages still ran on the fallback artifact.
	assert.True(t, frontend.called)
	assert.True(t, deployer.called)
}

func TestOrchestrator_PanicReturnsPartialState(t *testing.T) {
	t.Parallel()

	refiner, architect, _, frontend, reviewer, deployer := happyStages()
	orch := New(refiner, architect, panickingBackend{}, frontend, reviewer, deployer, zerolog.Nop())

	state := orch.Execute(context.Background(), "x")

	require.NotNil(t, state)
	assert.True(t, state.Failed())
	assert.Contains(t, state.Error, "pipeline aborted")
	assert.Contains(t, state.Error, "nil map write")

	// Only the two stages before the panic left audit entries.
	assert.Len(t, state.AgentResponses, 2)
	assert.NotNil(t, state.Refined)
	assert.NotNil(t, state.Architecture)
	assert.Nil(t, state.Frontend)
	assert.False(t, frontend.called)
	assert.False(t, deployer.called)
}

func TestOrchestrator_DeployerReceivesProjectID(t *testing.T) {
	t.Parallel()

	refiner, architect, backend, frontend, reviewer, deployer := happyStages()
	orch := New(refiner, architect, backend, frontend, reviewer, deployer, zerolog.Nop())

	orch.Execute(context.Background(), "x")

	assert.Regexp(t, regexp.MustCompile(`^\d{8}-\d{6}-[0-9a-f-]{8}$`), deployer.projectID)
}

func TestGenerateProjectID_Format(t *testing.T) {
	t.Parallel()

	id := GenerateProjectID()
	assert.Regexp(t, regexp.MustCompile(`^\d{8}-\d{6}-[0-9a-f-]{8}$`), id)

	other := GenerateProjectID()
	assert.NotEqual(t, id, other)
}

func TestInfo_StaticGraph(t *testing.T) {
	t.Parallel()

	info := Info()
	assert.Len(t, info.Nodes, 6)
	assert.Equal(t, "query_refiner", info.Nodes[0])
	assert.Equal(t, "deployment", info.Nodes[5])
	assert.Contains(t, info.Flow, "->")
}

// assertionError is a tiny error type for stubs.
type assertionError string

func (e assertionError) Error() string { return string(e) }
