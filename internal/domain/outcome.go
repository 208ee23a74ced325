// Package domain provides shared domain types for the POC builder pipeline.
package domain

// StageStatus reports whether a stage agent's call succeeded.
type StageStatus string

// Stage statuses. A stage that fails still produces a usable fallback
// payload, so StatusError marks degraded output, not a missing one.
const (
	StatusSuccess StageStatus = "success"
	StatusError   StageStatus = "error"
)

// Outcome is the uniform return value of every stage agent call.
//
// Output always conforms to the stage's declared payload type regardless of
// Status: on error it holds the stage's statically defined fallback, so
// downstream stages never branch on Status to find a usable value.
type Outcome[T any] struct {
	// Status is StatusSuccess or StatusError.
	Status StageStatus `json:"status"`

	// Agent is the human-readable name of the stage agent.
	Agent string `json:"agent"`

	// Output is the stage-specific payload. Always populated.
	Output T `json:"output"`

	// ErrorDetail describes the failure when Status is StatusError.
	ErrorDetail string `json:"error,omitempty"`
}

// Succeeded reports whether the stage completed without a modeled failure.
func (o Outcome[T]) Succeeded() bool {
	return o.Status == StatusSuccess
}

// Success builds a successful outcome for the named agent.
func Success[T any](agent string, output T) Outcome[T] {
	return Outcome[T]{
		Status: StatusSuccess,
		Agent:  agent,
		Output: output,
	}
}

// Failure builds an error outcome carrying the stage's fallback payload.
// The fallback must satisfy the same schema a successful call would produce.
func Failure[T any](agent string, fallback T, err error) Outcome[T] {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return Outcome[T]{
		Status:      StatusError,
		Agent:       agent,
		Output:      fallback,
		ErrorDetail: detail,
	}
}

// AgentResponse is one entry in the workflow's append-only audit trail.
// Summary deliberately elides large payloads like full source text, keeping
// only derived metrics so the trail stays bounded.
type AgentResponse struct {
	Agent   string         `json:"agent"`
	Status  StageStatus    `json:"status"`
	Summary map[string]any `json:"output"`
}
