// Package agent implements the six stage agents of the POC builder pipeline.
//
// Every agent wraps exactly one external call — a generative model call, or a
// process launch for the deployer — behind a uniform never-fails contract: a
// stage returns a domain.Outcome whose Output is always schema-conforming,
// substituting the stage's static fallback payload when the call or its
// parsing fails. Failures are contained here, as close to their source as
// possible, so a single bad model response never breaks the pipeline's
// sequential contract. Panics are the one thing agents do not catch; those
// are programming defects and belong to the orchestrator's recover boundary.
package agent

import (
	"encoding/json"
	"fmt"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/extract"
	apperrors "github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// Stage agent names as they appear in the audit trail.
const (
	RefinerName   = "Query Refiner Agent"
	ArchitectName = "Orchestrator Agent"
	BackendName   = "Code Generator Agent"
	FrontendName  = "UI Enrichment Agent"
	ReviewerName  = "Code Reviewer Agent"
	DeployerName  = "Code Deployment Agent"
)

// Info describes an agent's configuration for introspection endpoints.
type Info struct {
	Name        string  `json:"name"`
	Model       string  `json:"model,omitempty"`
	Temperature float32 `json:"temperature,omitempty"`
	Purpose     string  `json:"purpose"`
}

// decodeJSON extracts the JSON payload from raw model output and unmarshals
// it into T. A failure at either step is a response-parse failure.
func decodeJSON[T any](raw string) (T, error) {
	var out T
	body := extract.JSONBlock(raw)
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, fmt.Errorf("%w: %s", apperrors.ErrResponseParse, err.Error())
	}
	return out, nil
}

// indentJSON renders a value as indented JSON for prompt embedding.
func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
