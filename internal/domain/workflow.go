package domain

// WorkflowState is the single mutable record threaded through the pipeline.
//
// Every field except Requirement and AgentResponses starts empty and is
// written by exactly one stage; stage order guarantees no stage reads a field
// a later stage has not yet populated. AgentResponses grows by one entry per
// executed stage, including failed ones, and is never reordered.
type WorkflowState struct {
	// Requirement is the user's free-text input, immutable after creation.
	Requirement string `json:"requirement"`

	// Refined is written by the refine stage.
	Refined *RefinedRequirement `json:"refined_requirement,omitempty"`

	// Architecture is written by the architect stage.
	Architecture *ArchitectureDecision `json:"architecture,omitempty"`

	// Backend is written by the backend generation stage.
	Backend *Artifact `json:"backend_code,omitempty"`

	// Frontend is written by the frontend generation stage.
	Frontend *Artifact `json:"frontend_code,omitempty"`

	// Review is written by the review stage.
	Review *CodeReview `json:"code_review,omitempty"`

	// Deployment is written by the deploy stage.
	Deployment *DeploymentRecord `json:"deployment,omitempty"`

	// AgentResponses is the append-only audit trail, insertion order equals
	// execution order.
	AgentResponses []AgentResponse `json:"agent_responses"`

	// Error is set at most once, when an unexpected failure escaped a stage
	// agent's own containment. A non-empty Error means the run is failed and
	// the state is partial.
	Error string `json:"error,omitempty"`
}

// NewWorkflowState creates the initial state for one pipeline run.
func NewWorkflowState(requirement string) *WorkflowState {
	return &WorkflowState{
		Requirement:    requirement,
		AgentResponses: make([]AgentResponse, 0, 6),
	}
}

// Record appends one audit-trail entry for an executed stage.
func (s *WorkflowState) Record(agent string, status StageStatus, summary map[string]any) {
	s.AgentResponses = append(s.AgentResponses, AgentResponse{
		Agent:   agent,
		Status:  status,
		Summary: summary,
	})
}

// Failed reports whether the run hit an orchestration-level failure.
func (s *WorkflowState) Failed() bool {
	return s.Error != ""
}
